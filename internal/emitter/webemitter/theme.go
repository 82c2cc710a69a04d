package webemitter

import (
	"github.com/cuppalabs/cuppa/internal/spec/tokens"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Theme renders the token document as a const-asserted theme object, a typed
// token-keys export, and a CSS custom-property helper.
func Theme(theme *tokens.ParsedTheme, source string) string {
	varName := typeconv.Camel(theme.Name) + "Theme"
	typeName := typeconv.Pascal(theme.Name) + "Theme"

	lines := header(source)
	lines = append(lines, "")

	lines = append(lines, fmtLine("export const %s = {", varName))
	lines = append(lines, colorCategory(theme.Colors)...)
	lines = append(lines, typographyCategory(theme.Typography)...)
	lines = append(lines, unitCategory("spacing", theme.Spacing)...)
	lines = append(lines, unitCategory("borderRadius", theme.BorderRadius)...)
	lines = append(lines, shadowCategory(theme.Shadows)...)
	lines = append(lines, unitCategory("breakpoints", theme.Breakpoints)...)
	lines = append(lines, "} as const;")

	lines = append(lines,
		"",
		fmtLine("export type %s = typeof %s;", typeName, varName),
		"",
		"export const themeTokenKeys = {",
	)
	lines = append(lines, tokenKeys(theme)...)
	lines = append(lines, "} as const;")

	lines = append(lines, "")
	lines = append(lines, cssVariablesHelper(varName, theme)...)
	return join(lines)
}

func colorCategory(colors []tokens.ColorToken) []string {
	if len(colors) == 0 {
		return nil
	}
	lines := []string{"  colors: {"}
	for _, c := range colors {
		lines = append(lines, docComment("    ", c.Description)...)
		lines = append(lines, fmtLine("    %s: %q,", c.Name, c.Value))
	}
	return append(lines, "  },")
}

func typographyCategory(t tokens.Typography) []string {
	if len(t.FontFamilies) == 0 && len(t.FontSizes) == 0 && len(t.FontWeights) == 0 &&
		len(t.LineHeights) == 0 && len(t.LetterSpacing) == 0 {
		return nil
	}
	lines := []string{"  typography: {"}
	lines = append(lines, stringGroup("fontFamilies", t.FontFamilies)...)
	lines = append(lines, unitGroup("fontSizes", t.FontSizes)...)
	if len(t.FontWeights) > 0 {
		lines = append(lines, "    fontWeights: {")
		for _, w := range t.FontWeights {
			lines = append(lines, fmtLine("      %s: %s,", w.Name, typeconv.FormatNumber(w.Value)))
		}
		lines = append(lines, "    },")
	}
	lines = append(lines, unitGroup("lineHeights", t.LineHeights)...)
	lines = append(lines, unitGroup("letterSpacing", t.LetterSpacing)...)
	return append(lines, "  },")
}

func stringGroup(name string, list []tokens.StringToken) []string {
	if len(list) == 0 {
		return nil
	}
	lines := []string{fmtLine("    %s: {", name)}
	for _, s := range list {
		lines = append(lines, fmtLine("      %s: %q,", s.Name, s.Value))
	}
	return append(lines, "    },")
}

func unitGroup(name string, list []tokens.UnitToken) []string {
	if len(list) == 0 {
		return nil
	}
	lines := []string{fmtLine("    %s: {", name)}
	for _, u := range list {
		lines = append(lines, fmtLine("      %s: %q,", u.Name, unitString(u)))
	}
	return append(lines, "    },")
}

func unitCategory(name string, list []tokens.UnitToken) []string {
	if len(list) == 0 {
		return nil
	}
	lines := []string{fmtLine("  %s: {", name)}
	for _, u := range list {
		lines = append(lines, fmtLine("    %s: %q,", u.Name, unitString(u)))
	}
	return append(lines, "  },")
}

func shadowCategory(list []tokens.ShadowToken) []string {
	if len(list) == 0 {
		return nil
	}
	lines := []string{"  shadows: {"}
	for _, s := range list {
		lines = append(lines, docComment("    ", s.Description)...)
		lines = append(lines, fmtLine("    %s: %q,", s.Name, s.Value))
	}
	return append(lines, "  },")
}

func unitString(u tokens.UnitToken) string {
	return typeconv.UnitValue{Value: u.Value, Unit: u.Unit}.String()
}

// tokenKeys renders the flat name lists consumers iterate for lookups and
// exhaustiveness checks.
func tokenKeys(theme *tokens.ParsedTheme) []string {
	var lines []string
	if len(theme.Colors) > 0 {
		names := make([]string, len(theme.Colors))
		for i, c := range theme.Colors {
			names[i] = c.Name
		}
		lines = append(lines, keyList("colors", names))
	}
	if len(theme.Spacing) > 0 {
		lines = append(lines, keyList("spacing", unitNames(theme.Spacing)))
	}
	if len(theme.BorderRadius) > 0 {
		lines = append(lines, keyList("borderRadius", unitNames(theme.BorderRadius)))
	}
	if len(theme.Shadows) > 0 {
		names := make([]string, len(theme.Shadows))
		for i, s := range theme.Shadows {
			names[i] = s.Name
		}
		lines = append(lines, keyList("shadows", names))
	}
	if len(theme.Breakpoints) > 0 {
		lines = append(lines, keyList("breakpoints", unitNames(theme.Breakpoints)))
	}
	return lines
}

func unitNames(list []tokens.UnitToken) []string {
	names := make([]string, len(list))
	for i, u := range list {
		names[i] = u.Name
	}
	return names
}

func keyList(category string, names []string) string {
	out := "  " + category + ": ["
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += fmtLine("%q", n)
	}
	return out + "] as const,"
}

// cssVariablesHelper emits a function mapping the flat categories to CSS
// custom properties: colors.primaryDark becomes --<prefix>-colors-primary-dark.
func cssVariablesHelper(varName string, theme *tokens.ParsedTheme) []string {
	lines := []string{
		`export function themeToCSSVariables(prefix = "cuppa"): Record<string, string> {`,
		"  return {",
	}
	for _, c := range theme.Colors {
		lines = append(lines, cssVar("colors", c.Name, varName+".colors."+c.Name))
	}
	for _, u := range theme.Spacing {
		lines = append(lines, cssVar("spacing", u.Name, varName+".spacing."+u.Name))
	}
	for _, u := range theme.BorderRadius {
		lines = append(lines, cssVar("border-radius", u.Name, varName+".borderRadius."+u.Name))
	}
	for _, s := range theme.Shadows {
		lines = append(lines, cssVar("shadows", s.Name, varName+".shadows."+s.Name))
	}
	for _, u := range theme.Breakpoints {
		lines = append(lines, cssVar("breakpoints", u.Name, varName+".breakpoints."+u.Name))
	}
	lines = append(lines, "  };", "}")
	return lines
}

func cssVar(category, name, ref string) string {
	return fmtLine("    [`--${prefix}-%s-%s`]: %s,", category, typeconv.Kebab(name), ref)
}
