package component

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

const defaultPadding = 16

// Parse normalizes a component spec document. fallbackName and
// fallbackCategory fill in when the document omits them (the CLI can
// synthesize a component from just a name).
func Parse(root *yaml.Node, fallbackName, fallbackCategory string) (*ParsedComponent, error) {
	if root == nil {
		return nil, fmt.Errorf("component: nil document")
	}

	name := typeconv.Pascal(docs.GetStr(root, "name", fallbackName))
	if name == "" {
		return nil, fmt.Errorf("component: missing component name")
	}
	category := strings.TrimSpace(docs.GetStr(root, "category", fallbackCategory))
	if category == "" {
		category = "custom"
	}

	c := &ParsedComponent{
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(docs.GetStr(root, "description", "")),
		Style:       parseStyle(docs.Get(root, "style")),
	}

	for _, n := range docs.Seq(docs.Get(root, "properties")) {
		raw := docs.GetStr(n, "type", "any")
		c.Properties = append(c.Properties, Property{
			Name:         typeconv.Camel(docs.GetStr(n, "name", "")),
			RawType:      raw,
			Type:         typeconv.ParseDeclared(raw),
			Required:     docs.GetBool(n, "required", false),
			Description:  strings.TrimSpace(docs.GetStr(n, "description", "")),
			DefaultValue: docs.Value(docs.Get(n, "default")),
		})
	}

	for _, p := range docs.Mapping(docs.Get(root, "states")) {
		st := State{
			Name:        typeconv.Camel(p.Key),
			Description: strings.TrimSpace(docs.GetStr(p.Value, "description", "")),
		}
		if m, ok := docs.Value(p.Value).(map[string]any); ok {
			delete(m, "description")
			if len(m) > 0 {
				st.Overrides = m
			}
		}
		c.States = append(c.States, st)
		if st.Name == "loading" {
			c.HasLoadingState = true
		}
	}

	for _, n := range docs.Seq(docs.Get(root, "actions")) {
		a := Action{
			Name:        typeconv.Camel(docs.GetStr(n, "name", "")),
			Async:       strings.EqualFold(docs.GetStr(n, "type", "sync"), "async"),
			Returns:     strings.TrimSpace(docs.GetStr(n, "returns", "void")),
			Description: strings.TrimSpace(docs.GetStr(n, "description", "")),
		}
		for _, pn := range docs.Seq(docs.Get(n, "parameters")) {
			a.Parameters = append(a.Parameters, ActionParam{
				Name: typeconv.Camel(docs.GetStr(pn, "name", "")),
				Type: typeconv.ParseDeclared(docs.GetStr(pn, "type", "any")),
			})
		}
		c.Actions = append(c.Actions, a)
		if a.Async {
			c.HasAsyncAction = true
		}
	}

	for _, n := range docs.Seq(docs.Get(root, "slots")) {
		c.Slots = append(c.Slots, Slot{
			Name:        typeconv.Camel(docs.GetStr(n, "name", "")),
			Description: strings.TrimSpace(docs.GetStr(n, "description", "")),
		})
	}

	return c, nil
}

// Synthesize builds a minimal component spec when no file is given: one title
// property and a sync tap action.
func Synthesize(name, category string) *ParsedComponent {
	if category == "" {
		category = "custom"
	}
	return &ParsedComponent{
		Name:     typeconv.Pascal(name),
		Category: category,
		Properties: []Property{{
			Name:     "title",
			RawType:  "string",
			Type:     typeconv.ParseDeclared("string"),
			Required: true,
		}},
		Actions: []Action{{
			Name:    "onTap",
			Returns: "void",
		}},
		Style: Style{Padding: uniformPadding(defaultPadding)},
	}
}

func parseStyle(n *yaml.Node) Style {
	s := Style{
		Padding:         parsePadding(docs.Get(n, "padding")),
		BackgroundColor: strings.TrimSpace(docs.GetStr(n, "backgroundColor", "")),
		ForegroundColor: strings.TrimSpace(docs.GetStr(n, "foregroundColor", "")),
	}
	if r := docs.Get(n, "cornerRadius"); r != nil {
		s.CornerRadius = typeconv.ParseUnitValue(docs.Value(r)).Value
	}
	return s
}

// parsePadding normalizes the padding shorthand to four explicit sides. A
// bare number applies to every side; an object fills unset sides with the
// default of 16.
func parsePadding(n *yaml.Node) Padding {
	if n == nil {
		return uniformPadding(defaultPadding)
	}
	if n.Kind == yaml.MappingNode {
		return Padding{
			Top:    sideValue(n, "top"),
			Right:  sideValue(n, "right"),
			Bottom: sideValue(n, "bottom"),
			Left:   sideValue(n, "left"),
		}
	}
	return uniformPadding(typeconv.ParseUnitValue(docs.Value(n)).Value)
}

func sideValue(n *yaml.Node, key string) float64 {
	if v := docs.Get(n, key); v != nil {
		return typeconv.ParseUnitValue(docs.Value(v)).Value
	}
	return defaultPadding
}

func uniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}
