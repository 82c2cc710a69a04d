package tokens

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Parse decomposes a nested token document into a ParsedTheme. Each category
// is independent; a missing category yields an empty list. Entries may be a
// bare value or an object carrying `value` plus optional `description`.
func Parse(root *yaml.Node, themeName string) (*ParsedTheme, error) {
	if root == nil {
		return nil, fmt.Errorf("tokens: nil document")
	}
	name := strings.TrimSpace(themeName)
	if name == "" {
		name = strings.TrimSpace(docs.GetStr(root, "name", "Theme"))
	}

	theme := &ParsedTheme{Name: name}
	theme.Colors = parseColors(docs.Get(root, "colors"))
	theme.Typography = parseTypography(docs.Get(root, "typography"))
	theme.Spacing = parseUnits(docs.Get(root, "spacing"))
	theme.BorderRadius = parseUnits(docs.Get(root, "borderRadius"))
	theme.Shadows = parseShadows(docs.Get(root, "shadows"))
	theme.Breakpoints = parseUnits(docs.Get(root, "breakpoints"))
	return theme, nil
}

// entry splits the two accepted entry forms: a bare scalar, or an object with
// `value` and optional `description`.
func entry(n *yaml.Node) (value *yaml.Node, description string) {
	if v := docs.Get(n, "value"); v != nil {
		return v, strings.TrimSpace(docs.GetStr(n, "description", ""))
	}
	return n, ""
}

func parseColors(n *yaml.Node) []ColorToken {
	var out []ColorToken
	for _, p := range docs.Mapping(n) {
		v, desc := entry(p.Value)
		out = append(out, ColorToken{
			Name:        typeconv.Camel(p.Key),
			Value:       docs.Str(v),
			Description: desc,
		})
	}
	return out
}

func parseUnits(n *yaml.Node) []UnitToken {
	var out []UnitToken
	for _, p := range docs.Mapping(n) {
		v, _ := entry(p.Value)
		uv := typeconv.ParseUnitValue(docs.Value(v))
		out = append(out, UnitToken{
			Name:  typeconv.Camel(p.Key),
			Value: uv.Value,
			Unit:  uv.Unit,
		})
	}
	return out
}

func parseShadows(n *yaml.Node) []ShadowToken {
	var out []ShadowToken
	for _, p := range docs.Mapping(n) {
		v, desc := entry(p.Value)
		out = append(out, ShadowToken{
			Name:        typeconv.Camel(p.Key),
			Value:       docs.Str(v),
			Description: desc,
		})
	}
	return out
}

func parseTypography(n *yaml.Node) Typography {
	t := Typography{}
	for _, p := range docs.Mapping(docs.Get(n, "fontFamilies")) {
		v, desc := entry(p.Value)
		t.FontFamilies = append(t.FontFamilies, StringToken{
			Name:        typeconv.Camel(p.Key),
			Value:       docs.Str(v),
			Description: desc,
		})
	}
	t.FontSizes = parseUnits(docs.Get(n, "fontSizes"))
	for _, p := range docs.Mapping(docs.Get(n, "fontWeights")) {
		v, _ := entry(p.Value)
		t.FontWeights = append(t.FontWeights, NumberToken{
			Name:  typeconv.Camel(p.Key),
			Value: asNumber(v),
		})
	}
	t.LineHeights = parseUnits(docs.Get(n, "lineHeights"))
	t.LetterSpacing = parseUnits(docs.Get(n, "letterSpacing"))
	return t
}

// asNumber reads a scalar as a bare number. Weights given as strings
// ("400") parse; anything else degrades to zero like the unit parser does.
func asNumber(n *yaml.Node) float64 {
	switch v := docs.Value(n).(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}
