package swiftemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/component"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Component renders a SwiftUI view. Declarations follow a fixed order:
// properties, loading state, actions, initializers, body, helpers. When the
// component has an asynchronous action, two initializer overloads are
// emitted: one taking the async closure and a convenience one wrapping a
// synchronous closure in a Task.
func Component(c *component.ParsedComponent, source string) string {
	lines := header(source)
	lines = append(lines, "", "import SwiftUI", "")
	lines = append(lines, docComment("", c.Description)...)
	lines = append(lines, fmtLine("public struct %s: View {", c.Name))

	// Properties.
	for _, p := range c.Properties {
		lines = append(lines, docComment("    ", p.Description)...)
		base := p.Type.TargetName(typeconv.IOS)
		if p.IsBinding() {
			lines = append(lines, fmtLine("    @Binding public var %s: %s", p.Name, base))
		} else {
			lines = append(lines, fmtLine("    public let %s: %s", p.Name, base))
		}
	}

	// Loading state.
	if c.HasLoadingState {
		lines = append(lines, "", "    @State private var isLoading = false")
	}

	// Actions.
	if len(c.Actions) > 0 {
		lines = append(lines, "")
		for _, a := range c.Actions {
			lines = append(lines, docComment("    ", a.Description)...)
			lines = append(lines, fmtLine("    public let %s: %s", a.Name, actionClosureType(a, a.Async)))
		}
	}

	// Initializers.
	lines = append(lines, "")
	lines = append(lines, primaryInit(c)...)
	if c.HasAsyncAction {
		lines = append(lines, "")
		lines = append(lines, syncConvenienceInit(c)...)
	}

	// Body.
	lines = append(lines, "")
	lines = append(lines, bodyBlock(c)...)

	// Helpers.
	if c.HasLoadingState && c.HasAsyncAction {
		lines = append(lines, "")
		lines = append(lines, performHelper(c)...)
	}

	lines = append(lines, "}")
	return join(lines)
}

// actionClosureType renders the closure type of an action, e.g.
// `(String) async -> Void`.
func actionClosureType(a component.Action, async bool) string {
	var args []string
	for _, p := range a.Parameters {
		args = append(args, p.Type.TargetName(typeconv.IOS))
	}
	sig := "(" + strings.Join(args, ", ") + ")"
	if async {
		sig += " async"
	}
	return sig + " -> " + typeconv.MapScalar(typeconv.IOS, a.Returns)
}

func primaryInit(c *component.ParsedComponent) []string {
	var params []string
	for _, p := range c.Properties {
		base := p.Type.TargetName(typeconv.IOS)
		if p.IsBinding() {
			params = append(params, fmtLine("%s: Binding<%s>", p.Name, base))
		} else if !p.Required {
			params = append(params, fmtLine("%s: %s%s", p.Name, base, defaultSuffix(p)))
		} else {
			params = append(params, fmtLine("%s: %s", p.Name, base))
		}
	}
	for _, a := range c.Actions {
		params = append(params, fmtLine("%s: @escaping %s", a.Name, actionClosureType(a, a.Async)))
	}

	lines := []string{fmtLine("    public init(%s) {", joinParams(params))}
	for _, p := range c.Properties {
		if p.IsBinding() {
			lines = append(lines, fmtLine("        self._%s = %s", p.Name, p.Name))
		} else {
			lines = append(lines, fmtLine("        self.%s = %s", p.Name, p.Name))
		}
	}
	for _, a := range c.Actions {
		lines = append(lines, fmtLine("        self.%s = %s", a.Name, a.Name))
	}
	lines = append(lines, "    }")
	return lines
}

// syncConvenienceInit accepts synchronous closures for the async actions and
// wraps them so callers without async contexts can still use the component.
func syncConvenienceInit(c *component.ParsedComponent) []string {
	var params []string
	for _, p := range c.Properties {
		base := p.Type.TargetName(typeconv.IOS)
		if p.IsBinding() {
			params = append(params, fmtLine("%s: Binding<%s>", p.Name, base))
		} else if !p.Required {
			params = append(params, fmtLine("%s: %s%s", p.Name, base, defaultSuffix(p)))
		} else {
			params = append(params, fmtLine("%s: %s", p.Name, base))
		}
	}
	for _, a := range c.Actions {
		params = append(params, fmtLine("%s: @escaping %s", a.Name, actionClosureType(a, false)))
	}

	var forward []string
	for _, p := range c.Properties {
		forward = append(forward, fmtLine("%s: %s", p.Name, p.Name))
	}
	for _, a := range c.Actions {
		if a.Async {
			var args []string
			for i := range a.Parameters {
				args = append(args, fmtLine("$%d", i))
			}
			forward = append(forward, fmtLine("%s: { %s(%s) }", a.Name, a.Name, strings.Join(args, ", ")))
		} else {
			forward = append(forward, fmtLine("%s: %s", a.Name, a.Name))
		}
	}

	lines := []string{"    /// Accepts a synchronous action and runs it from the async context."}
	lines = append(lines, fmtLine("    public init(%s) {", joinParams(params)))
	lines = append(lines, fmtLine("        self.init(%s)", joinParams(forward)))
	lines = append(lines, "    }")
	return lines
}

func defaultSuffix(p component.Property) string {
	if p.Type.Optional {
		return " = nil"
	}
	return ""
}

func bodyBlock(c *component.ParsedComponent) []string {
	lines := []string{"    public var body: some View {"}
	lines = append(lines, "        VStack {")
	if c.HasLoadingState {
		lines = append(lines, "            if isLoading {", "                ProgressView()", "            }")
	}
	lines = append(lines, fmtLine("            Text(%q)", c.Name))
	lines = append(lines, "        }")

	pad := c.Style.Padding
	if pad.Uniform() {
		lines = append(lines, fmtLine("        .padding(%s)", cgFloat(pad.Top)))
	} else {
		lines = append(lines, fmtLine("        .padding(EdgeInsets(top: %s, leading: %s, bottom: %s, trailing: %s))",
			cgFloat(pad.Top), cgFloat(pad.Left), cgFloat(pad.Bottom), cgFloat(pad.Right)))
	}
	if c.Style.CornerRadius > 0 {
		lines = append(lines, fmtLine("        .cornerRadius(%s)", cgFloat(c.Style.CornerRadius)))
	}
	lines = append(lines, "    }")
	return lines
}

func performHelper(c *component.ParsedComponent) []string {
	// First async action drives the loading state.
	var action string
	for _, a := range c.Actions {
		if a.Async {
			action = a.Name
			break
		}
	}
	return []string{
		"    private func perform() {",
		"        Task {",
		"            isLoading = true",
		fmtLine("            await %s()", action),
		"            isLoading = false",
		"        }",
		"    }",
	}
}
