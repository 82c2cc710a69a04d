package swiftemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/tokens"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Theme renders the token document as nested Swift namespaces of static
// constants, plus a Color(hex:) helper when any colors are present.
func Theme(theme *tokens.ParsedTheme, source string) string {
	name := typeconv.Pascal(theme.Name) + "Theme"

	lines := header(source)
	lines = append(lines, "", "import SwiftUI", "")
	lines = append(lines, fmtLine("public enum %s {", name))

	if len(theme.Colors) > 0 {
		lines = append(lines, "    public enum Colors {")
		for _, c := range theme.Colors {
			lines = append(lines, docComment("        ", c.Description)...)
			lines = append(lines, fmtLine("        public static let %s = Color(hex: %q)", c.Name, c.Value))
		}
		lines = append(lines, "    }")
	}

	lines = append(lines, typographyBlock(theme.Typography)...)
	lines = append(lines, unitBlock("Spacing", theme.Spacing)...)
	lines = append(lines, unitBlock("Radius", theme.BorderRadius)...)

	if len(theme.Shadows) > 0 {
		lines = append(lines, "    public enum Shadows {")
		for _, s := range theme.Shadows {
			lines = append(lines, docComment("        ", s.Description)...)
			lines = append(lines, fmtLine("        public static let %s = %q", s.Name, s.Value))
		}
		lines = append(lines, "    }")
	}

	lines = append(lines, unitBlock("Breakpoints", theme.Breakpoints)...)
	lines = append(lines, "}")

	if len(theme.Colors) > 0 {
		lines = append(lines, "")
		lines = append(lines, colorHexExtension()...)
	}
	return join(lines)
}

func typographyBlock(t tokens.Typography) []string {
	if len(t.FontFamilies) == 0 && len(t.FontSizes) == 0 && len(t.FontWeights) == 0 &&
		len(t.LineHeights) == 0 && len(t.LetterSpacing) == 0 {
		return nil
	}
	lines := []string{"    public enum Typography {"}
	for _, f := range t.FontFamilies {
		lines = append(lines, fmtLine("        public static let %sFamily = %q", f.Name, f.Value))
	}
	for _, s := range t.FontSizes {
		lines = append(lines, fmtLine("        public static let %sSize: CGFloat = %s", s.Name, cgFloat(s.Value)))
	}
	for _, w := range t.FontWeights {
		lines = append(lines, fmtLine("        public static let %sWeight: Font.Weight = %s", w.Name, fontWeightCase(w.Value)))
	}
	for _, lh := range t.LineHeights {
		lines = append(lines, fmtLine("        public static let %sLineHeight: CGFloat = %s", lh.Name, cgFloat(lh.Value)))
	}
	for _, ls := range t.LetterSpacing {
		lines = append(lines, fmtLine("        public static let %sTracking: CGFloat = %s", ls.Name, cgFloat(ls.Value)))
	}
	lines = append(lines, "    }")
	return lines
}

func unitBlock(name string, list []tokens.UnitToken) []string {
	if len(list) == 0 {
		return nil
	}
	lines := []string{fmtLine("    public enum %s {", name)}
	for _, u := range list {
		lines = append(lines, fmtLine("        public static let %s: CGFloat = %s", u.Name, cgFloat(u.Value)))
	}
	lines = append(lines, "    }")
	return lines
}

// fontWeightCase maps numeric weights to Font.Weight raw values via the
// nearest named case.
func fontWeightCase(w float64) string {
	switch {
	case w <= 100:
		return ".ultraLight"
	case w <= 200:
		return ".thin"
	case w <= 300:
		return ".light"
	case w <= 400:
		return ".regular"
	case w <= 500:
		return ".medium"
	case w <= 600:
		return ".semibold"
	case w <= 700:
		return ".bold"
	case w <= 800:
		return ".heavy"
	default:
		return ".black"
	}
}

func colorHexExtension() []string {
	src := `extension Color {
    init(hex: String) {
        let cleaned = hex.trimmingCharacters(in: CharacterSet.alphanumerics.inverted)
        var value: UInt64 = 0
        Scanner(string: cleaned).scanHexInt64(&value)
        let r, g, b, a: UInt64
        switch cleaned.count {
        case 8:
            (r, g, b, a) = (value >> 24 & 0xff, value >> 16 & 0xff, value >> 8 & 0xff, value & 0xff)
        default:
            (r, g, b, a) = (value >> 16 & 0xff, value >> 8 & 0xff, value & 0xff, 255)
        }
        self.init(
            .sRGB,
            red: Double(r) / 255,
            green: Double(g) / 255,
            blue: Double(b) / 255,
            opacity: Double(a) / 255
        )
    }
}`
	return strings.Split(src, "\n")
}
