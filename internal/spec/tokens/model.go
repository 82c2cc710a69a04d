// Package tokens normalizes design-token documents into flat named-value
// lists consumed by the theme generators.
package tokens

// ParsedTheme is the normalized form of one design-token document. Absent
// categories are empty lists, never nil-panics or errors.
type ParsedTheme struct {
	Name         string
	Colors       []ColorToken
	Typography   Typography
	Spacing      []UnitToken
	BorderRadius []UnitToken
	Shadows      []ShadowToken
	Breakpoints  []UnitToken
}

// Typography groups the font-related token lists.
type Typography struct {
	FontFamilies  []StringToken
	FontSizes     []UnitToken
	FontWeights   []NumberToken
	LineHeights   []UnitToken
	LetterSpacing []UnitToken
}

// ColorToken is a named color value, kept as its source string (hex, rgba,
// or a reference the target resolves).
type ColorToken struct {
	Name        string
	Value       string
	Description string
}

// UnitToken is a named numeric value with a unit, e.g. spacing and radii.
type UnitToken struct {
	Name  string
	Value float64
	Unit  string
}

// NumberToken is a named bare number, e.g. font weights.
type NumberToken struct {
	Name  string
	Value float64
}

// StringToken is a named free-form string, e.g. font families.
type StringToken struct {
	Name        string
	Value       string
	Description string
}

// ShadowToken keeps the shadow shorthand as written; targets render it
// natively.
type ShadowToken struct {
	Name        string
	Value       string
	Description string
}

// IsEmpty reports whether no category produced any token.
func (t *ParsedTheme) IsEmpty() bool {
	return len(t.Colors) == 0 &&
		len(t.Typography.FontFamilies) == 0 &&
		len(t.Typography.FontSizes) == 0 &&
		len(t.Typography.FontWeights) == 0 &&
		len(t.Typography.LineHeights) == 0 &&
		len(t.Typography.LetterSpacing) == 0 &&
		len(t.Spacing) == 0 &&
		len(t.BorderRadius) == 0 &&
		len(t.Shadows) == 0 &&
		len(t.Breakpoints) == 0
}
