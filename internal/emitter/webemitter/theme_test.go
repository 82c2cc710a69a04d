package webemitter

import (
	"strings"
	"testing"

	"github.com/cuppalabs/cuppa/internal/spec/tokens"
)

func brandTheme() *tokens.ParsedTheme {
	return &tokens.ParsedTheme{
		Name: "brand",
		Colors: []tokens.ColorToken{
			{Name: "primary", Value: "#3366FF"},
			{Name: "primaryDark", Value: "#1A44CC"},
		},
		Typography: tokens.Typography{
			FontFamilies: []tokens.StringToken{{Name: "body", Value: "Inter"}},
			FontSizes:    []tokens.UnitToken{{Name: "body", Value: 16, Unit: "px"}},
		},
		Spacing: []tokens.UnitToken{
			{Name: "small", Value: 8, Unit: "px"},
			{Name: "medium", Value: 16, Unit: "px"},
		},
		Shadows: []tokens.ShadowToken{{Name: "card", Value: "0 2px 4px rgba(0,0,0,0.1)"}},
	}
}

func TestThemeObject(t *testing.T) {
	freezeNow(t)

	out := Theme(brandTheme(), "brand.tokens.json")
	for _, want := range []string{
		"export const brandTheme = {",
		`    primary: "#3366FF",`,
		`    small: "8px",`,
		`      body: "16px",`,
		`      body: "Inter",`,
		`    card: "0 2px 4px rgba(0,0,0,0.1)",`,
		"} as const;",
		"export type BrandTheme = typeof brandTheme;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestThemeTokenKeys(t *testing.T) {
	freezeNow(t)

	out := Theme(brandTheme(), "brand.tokens.json")
	if !strings.Contains(out, "export const themeTokenKeys = {") {
		t.Fatalf("missing themeTokenKeys export in:\n%s", out)
	}
	if !strings.Contains(out, `  colors: ["primary", "primaryDark"] as const,`) {
		t.Errorf("missing color keys in:\n%s", out)
	}
	if !strings.Contains(out, `  spacing: ["small", "medium"] as const,`) {
		t.Errorf("missing spacing keys in:\n%s", out)
	}
	if strings.Contains(out, "breakpoints: [") {
		t.Errorf("empty categories must be omitted from token keys:\n%s", out)
	}
}

func TestThemeCSSVariables(t *testing.T) {
	freezeNow(t)

	out := Theme(brandTheme(), "brand.tokens.json")
	if !strings.Contains(out, `export function themeToCSSVariables(prefix = "cuppa"): Record<string, string> {`) {
		t.Fatalf("missing CSS variable helper in:\n%s", out)
	}
	if !strings.Contains(out, "[`--${prefix}-colors-primary-dark`]: brandTheme.colors.primaryDark,") {
		t.Errorf("camelCase names must kebab in variable names:\n%s", out)
	}
	if !strings.Contains(out, "[`--${prefix}-spacing-small`]: brandTheme.spacing.small,") {
		t.Errorf("missing spacing variable in:\n%s", out)
	}
}
