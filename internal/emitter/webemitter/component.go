package webemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/component"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Component renders a React function component with a typed props interface.
// Binding properties become a value prop plus an optional on<Name>Change
// callback; async actions return promises and drive the loading state.
func Component(c *component.ParsedComponent, source string) string {
	lines := header(source)
	lines = append(lines, "")
	if c.HasLoadingState {
		lines = append(lines, `import { useState } from "react";`, "")
	}

	lines = append(lines, propsInterface(c)...)
	lines = append(lines, "")
	lines = append(lines, docComment("", c.Description)...)
	lines = append(lines, fmtLine("export function %s({ %s }: %sProps) {", c.Name, strings.Join(propNames(c), ", "), c.Name))

	if c.HasLoadingState {
		lines = append(lines, "  const [isLoading, setIsLoading] = useState(false);")
	}

	if c.HasLoadingState && c.HasAsyncAction {
		lines = append(lines, "")
		lines = append(lines, handleHelper(c)...)
	}

	lines = append(lines, "")
	lines = append(lines, renderBlock(c)...)
	lines = append(lines, "}")
	return join(lines)
}

func propsInterface(c *component.ParsedComponent) []string {
	lines := []string{fmtLine("export interface %sProps {", c.Name)}
	for _, p := range c.Properties {
		lines = append(lines, docComment("  ", p.Description)...)
		opt := ""
		if !p.Required && !p.IsBinding() {
			opt = "?"
		}
		lines = append(lines, fmtLine("  %s%s: %s;", p.Name, opt, p.Type.TargetName(typeconv.Web)))
		if p.IsBinding() {
			lines = append(lines, fmtLine("  on%sChange?: (value: %s) => void;", typeconv.Pascal(p.Name), p.Type.TargetName(typeconv.Web)))
		}
	}
	for _, a := range c.Actions {
		lines = append(lines, docComment("  ", a.Description)...)
		lines = append(lines, fmtLine("  %s: %s;", a.Name, actionType(a)))
	}
	return append(lines, "}")
}

func actionType(a component.Action) string {
	var args []string
	for _, p := range a.Parameters {
		args = append(args, fmtLine("%s: %s", p.Name, p.Type.TargetName(typeconv.Web)))
	}
	ret := typeconv.MapScalar(typeconv.Web, a.Returns)
	if a.Async {
		ret = "Promise<" + ret + ">"
	}
	return "(" + strings.Join(args, ", ") + ") => " + ret
}

func propNames(c *component.ParsedComponent) []string {
	var names []string
	for _, p := range c.Properties {
		names = append(names, p.Name)
		if p.IsBinding() {
			names = append(names, "on"+typeconv.Pascal(p.Name)+"Change")
		}
	}
	for _, a := range c.Actions {
		names = append(names, a.Name)
	}
	return names
}

// handleHelper wraps the first async action so the loading flag tracks it.
func handleHelper(c *component.ParsedComponent) []string {
	var action *component.Action
	for i := range c.Actions {
		if c.Actions[i].Async {
			action = &c.Actions[i]
			break
		}
	}
	if action == nil {
		return nil
	}

	var params, args []string
	for _, p := range action.Parameters {
		params = append(params, fmtLine("%s: %s", p.Name, p.Type.TargetName(typeconv.Web)))
		args = append(args, p.Name)
	}
	return []string{
		fmtLine("  const handle%s = async (%s) => {", typeconv.Pascal(action.Name), strings.Join(params, ", ")),
		"    setIsLoading(true);",
		"    try {",
		fmtLine("      await %s(%s);", action.Name, strings.Join(args, ", ")),
		"    } finally {",
		"      setIsLoading(false);",
		"    }",
		"  };",
	}
}

func renderBlock(c *component.ParsedComponent) []string {
	lines := []string{"  return ("}
	lines = append(lines, fmtLine("    <div style={%s}>", styleObject(c.Style)))
	if c.HasLoadingState {
		lines = append(lines, "      {isLoading ? <span>Loading...</span> : null}")
	}
	lines = append(lines, fmtLine("      <span>%s</span>", c.Name))
	lines = append(lines, "    </div>", "  );")
	return lines
}

func styleObject(s component.Style) string {
	var fields []string
	pad := s.Padding
	if pad.Uniform() {
		fields = append(fields, fmtLine("padding: %q", typeconv.FormatNumber(pad.Top)+"px"))
	} else {
		fields = append(fields, fmtLine("padding: \"%spx %spx %spx %spx\"",
			typeconv.FormatNumber(pad.Top), typeconv.FormatNumber(pad.Right),
			typeconv.FormatNumber(pad.Bottom), typeconv.FormatNumber(pad.Left)))
	}
	if s.CornerRadius > 0 {
		fields = append(fields, fmtLine("borderRadius: %q", typeconv.FormatNumber(s.CornerRadius)+"px"))
	}
	if s.BackgroundColor != "" {
		fields = append(fields, fmtLine("backgroundColor: %q", s.BackgroundColor))
	}
	if s.ForegroundColor != "" {
		fields = append(fields, fmtLine("color: %q", s.ForegroundColor))
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}
