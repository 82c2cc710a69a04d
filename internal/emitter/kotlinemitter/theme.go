package kotlinemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/tokens"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// MaterialTypeScale is the fixed Material 3 type-scale slot list the Android
// theme generator keys typography tokens against. A font-size token whose
// camelCase name matches a slot becomes a TextStyle in the generated
// Typography object.
var MaterialTypeScale = []string{
	"displayLarge", "displayMedium", "displaySmall",
	"headlineLarge", "headlineMedium", "headlineSmall",
	"titleLarge", "titleMedium", "titleSmall",
	"bodyLarge", "bodyMedium", "bodySmall",
	"labelLarge", "labelMedium", "labelSmall",
}

// Theme renders the token document as Compose objects of static values, plus
// a Material Typography value when any font-size token names a type-scale
// slot.
func Theme(theme *tokens.ParsedTheme, source string) string {
	name := typeconv.Pascal(theme.Name) + "Theme"

	lines := header(source)
	lines = append(lines, "", "package "+generatedPackage, "")
	lines = append(lines, themeImports(theme)...)
	lines = append(lines, "")

	lines = append(lines, fmtLine("object %s {", name))

	if len(theme.Colors) > 0 {
		lines = append(lines, "    object Colors {")
		for _, c := range theme.Colors {
			lines = append(lines, docComment("        ", c.Description)...)
			lines = append(lines, fmtLine("        val %s = %s", c.Name, composeColor(c.Value)))
		}
		lines = append(lines, "    }")
	}

	lines = append(lines, typographyObject(theme.Typography)...)
	lines = append(lines, unitObject("Spacing", theme.Spacing, "dp")...)
	lines = append(lines, unitObject("Radius", theme.BorderRadius, "dp")...)

	if len(theme.Shadows) > 0 {
		lines = append(lines, "    object Shadows {")
		for _, s := range theme.Shadows {
			lines = append(lines, docComment("        ", s.Description)...)
			lines = append(lines, fmtLine("        const val %s = %q", s.Name, s.Value))
		}
		lines = append(lines, "    }")
	}

	lines = append(lines, unitObject("Breakpoints", theme.Breakpoints, "dp")...)
	lines = append(lines, "}")

	if scale := typeScaleEntries(theme.Typography); len(scale) > 0 {
		lines = append(lines, "")
		lines = append(lines, materialTypography(typeconv.Pascal(theme.Name), theme.Typography, scale)...)
	}

	return join(lines)
}

func themeImports(theme *tokens.ParsedTheme) []string {
	var lines []string
	if len(theme.Colors) > 0 {
		lines = append(lines, "import androidx.compose.ui.graphics.Color")
	}
	t := theme.Typography
	hasType := len(t.FontSizes) > 0 || len(t.FontWeights) > 0 ||
		len(t.LineHeights) > 0 || len(t.LetterSpacing) > 0
	if len(typeScaleEntries(t)) > 0 {
		lines = append(lines,
			"import androidx.compose.material3.Typography",
			"import androidx.compose.ui.text.TextStyle",
		)
		if len(t.FontWeights) > 0 {
			lines = append(lines, "import androidx.compose.ui.text.font.FontWeight")
		}
	}
	if len(theme.Spacing) > 0 || len(theme.BorderRadius) > 0 || len(theme.Breakpoints) > 0 {
		lines = append(lines, "import androidx.compose.ui.unit.dp")
	}
	if hasType {
		lines = append(lines, "import androidx.compose.ui.unit.sp")
	}
	return lines
}

func typographyObject(t tokens.Typography) []string {
	if len(t.FontFamilies) == 0 && len(t.FontSizes) == 0 && len(t.FontWeights) == 0 &&
		len(t.LineHeights) == 0 && len(t.LetterSpacing) == 0 {
		return nil
	}
	lines := []string{"    object Fonts {"}
	for _, f := range t.FontFamilies {
		lines = append(lines, fmtLine("        const val %sFamily = %q", f.Name, f.Value))
	}
	for _, s := range t.FontSizes {
		lines = append(lines, fmtLine("        val %sSize = %s.sp", s.Name, typeconv.FormatNumber(s.Value)))
	}
	for _, w := range t.FontWeights {
		lines = append(lines, fmtLine("        const val %sWeight = %s", w.Name, typeconv.FormatNumber(w.Value)))
	}
	for _, lh := range t.LineHeights {
		lines = append(lines, fmtLine("        val %sLineHeight = %s.sp", lh.Name, typeconv.FormatNumber(lh.Value)))
	}
	for _, ls := range t.LetterSpacing {
		lines = append(lines, fmtLine("        val %sLetterSpacing = %s.sp", ls.Name, typeconv.FormatNumber(ls.Value)))
	}
	lines = append(lines, "    }")
	return lines
}

func unitObject(name string, list []tokens.UnitToken, unit string) []string {
	if len(list) == 0 {
		return nil
	}
	lines := []string{fmtLine("    object %s {", name)}
	for _, u := range list {
		lines = append(lines, fmtLine("        val %s = %s.%s", u.Name, typeconv.FormatNumber(u.Value), unit))
	}
	lines = append(lines, "    }")
	return lines
}

// typeScaleEntries returns the type-scale slots that have a matching
// font-size token, in Material slot order.
func typeScaleEntries(t tokens.Typography) []string {
	sized := map[string]bool{}
	for _, s := range t.FontSizes {
		sized[s.Name] = true
	}
	var out []string
	for _, slot := range MaterialTypeScale {
		if sized[slot] {
			out = append(out, slot)
		}
	}
	return out
}

func materialTypography(prefix string, t tokens.Typography, scale []string) []string {
	weights := map[string]float64{}
	for _, w := range t.FontWeights {
		weights[w.Name] = w.Value
	}
	lineHeights := map[string]float64{}
	for _, lh := range t.LineHeights {
		lineHeights[lh.Name] = lh.Value
	}
	sizes := map[string]float64{}
	for _, s := range t.FontSizes {
		sizes[s.Name] = s.Value
	}

	lines := []string{fmtLine("val %sTypography = Typography(", prefix)}
	for _, slot := range scale {
		var fields []string
		fields = append(fields, fmtLine("fontSize = %s.sp", typeconv.FormatNumber(sizes[slot])))
		if w, ok := weights[slot]; ok {
			fields = append(fields, fmtLine("fontWeight = FontWeight(%s)", typeconv.FormatNumber(w)))
		}
		if lh, ok := lineHeights[slot]; ok {
			fields = append(fields, fmtLine("lineHeight = %s.sp", typeconv.FormatNumber(lh)))
		}
		lines = append(lines, fmtLine("    %s = TextStyle(%s),", slot, strings.Join(fields, ", ")))
	}
	lines = append(lines, ")")
	return lines
}

// composeColor rewrites #RGB, #RRGGBB, and #RRGGBBAA hex strings into Compose
// Color(0xAARRGGBB) literals. Anything else (rgba(), references) stays as a
// string the consuming code resolves.
func composeColor(value string) string {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if hex == value || !isHex(hex) {
		return fmtLine("%q", value)
	}
	switch len(hex) {
	case 3:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return fmtLine("Color(0xFF%s)", strings.ToUpper(b.String()))
	case 6:
		return fmtLine("Color(0xFF%s)", strings.ToUpper(hex))
	case 8:
		// CSS orders RRGGBBAA; Compose wants AARRGGBB.
		return fmtLine("Color(0x%s%s)", strings.ToUpper(hex[6:]), strings.ToUpper(hex[:6]))
	default:
		return fmtLine("%q", value)
	}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
