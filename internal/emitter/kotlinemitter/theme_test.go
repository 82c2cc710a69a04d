package kotlinemitter

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
			{Name: "overlay", Value: "#00000080"},
			{Name: "accent", Value: "rgba(0, 0, 0, 0.5)"},
		},
		Typography: tokens.Typography{
			FontSizes: []tokens.UnitToken{
				{Name: "bodyLarge", Value: 16, Unit: "px"},
				{Name: "titleMedium", Value: 20, Unit: "px"},
				{Name: "caption", Value: 12, Unit: "px"},
			},
			FontWeights: []tokens.NumberToken{{Name: "titleMedium", Value: 600}},
			LineHeights: []tokens.UnitToken{{Name: "bodyLarge", Value: 24, Unit: "px"}},
		},
		Spacing:     []tokens.UnitToken{{Name: "small", Value: 8, Unit: "px"}},
		Breakpoints: []tokens.UnitToken{{Name: "tablet", Value: 768, Unit: "px"}},
	}
}

func TestMaterialTypeScaleTable(t *testing.T) {
	t.Parallel()

	if len(MaterialTypeScale) != 15 {
		t.Fatalf("type scale has %d slots, want 15", len(MaterialTypeScale))
	}
	for _, role := range []string{"display", "headline", "title", "body", "label"} {
		for _, size := range []string{"Large", "Medium", "Small"} {
			want := role + size
			found := false
			for _, slot := range MaterialTypeScale {
				if slot == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("type scale missing slot %q", want)
			}
		}
	}
}

func TestThemeColors(t *testing.T) {
	freezeNow(t)

	out := Theme(brandTheme(), "brand.tokens.json")
	if !strings.Contains(out, "object BrandTheme {") {
		t.Fatalf("missing theme object in:\n%s", out)
	}
	if !strings.Contains(out, "val primary = Color(0xFF3366FF)") {
		t.Errorf("six-digit hex should gain full alpha:\n%s", out)
	}
	if !strings.Contains(out, "val overlay = Color(0x80000000)") {
		t.Errorf("RRGGBBAA should reorder to AARRGGBB:\n%s", out)
	}
	if !strings.Contains(out, `val accent = "rgba(0, 0, 0, 0.5)"`) {
		t.Errorf("non-hex colors should stay as strings:\n%s", out)
	}
}

func TestThemeUnits(t *testing.T) {
	freezeNow(t)

	out := Theme(brandTheme(), "brand.tokens.json")
	if !strings.Contains(out, "val small = 8.dp") {
		t.Errorf("missing spacing value in:\n%s", out)
	}
	if !strings.Contains(out, "val tablet = 768.dp") {
		t.Errorf("missing breakpoint value in:\n%s", out)
	}
}

func TestThemeMaterialTypography(t *testing.T) {
	freezeNow(t)

	out := Theme(brandTheme(), "brand.tokens.json")
	if !strings.Contains(out, "val BrandTypography = Typography(") {
		t.Fatalf("missing Typography value in:\n%s", out)
	}
	if !strings.Contains(out, "bodyLarge = TextStyle(fontSize = 16.sp, lineHeight = 24.sp),") {
		t.Errorf("bodyLarge slot should carry size and line height:\n%s", out)
	}
	if !strings.Contains(out, "titleMedium = TextStyle(fontSize = 20.sp, fontWeight = FontWeight(600)),") {
		t.Errorf("titleMedium slot should carry size and weight:\n%s", out)
	}
	if strings.Contains(out, "caption = TextStyle") {
		t.Errorf("non-scale names must not become Typography slots:\n%s", out)
	}
	// The raw token is still reachable under Fonts.
	if !strings.Contains(out, "val captionSize = 12.sp") {
		t.Errorf("non-scale font sizes should still be emitted:\n%s", out)
	}
}

func TestThemeWithoutScaleOmitsTypography(t *testing.T) {
	freezeNow(t)

	out := Theme(&tokens.ParsedTheme{
		Name:    "bare",
		Spacing: []tokens.UnitToken{{Name: "s", Value: 4}},
	}, "bare.json")
	if strings.Contains(out, "Typography(") {
		t.Errorf("Typography should be omitted without matching slots:\n%s", out)
	}
	if strings.Contains(out, "import androidx.compose.material3.Typography") {
		t.Errorf("unused Typography import should be omitted:\n%s", out)
	}
}
