package webemitter

import (
	"strings"
	"testing"
	"time"

	"github.com/cuppalabs/cuppa/internal/spec/schema"
)

func freezeNow(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func userModel() *schema.ParsedModel {
	return &schema.ParsedModel{
		Name:        "User",
		Description: "A registered user.",
		Properties: []schema.ParsedProperty{
			{Name: "id", SourceType: "string"},
			{Name: "display_name", SourceType: "string", Optional: true},
			{Name: "age", SourceType: "integer", Optional: true},
			{Name: "tags", SourceType: "string", Array: true, Optional: true},
		},
	}
}

func TestModelInterface(t *testing.T) {
	freezeNow(t)

	out := Model(userModel(), "user.schema.json")
	for _, want := range []string{
		"// Generated by cuppa. DO NOT EDIT.",
		"// Generated on: 2024-05-01T12:00:00Z",
		"export interface User {",
		"  id: string;",
		"  display_name?: string;",
		"  age?: number;",
		"  tags?: string[];",
		"/** A registered user. */",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestModelKeepsWireNames(t *testing.T) {
	freezeNow(t)

	out := Model(userModel(), "user.schema.json")
	if strings.Contains(out, "displayName") {
		t.Errorf("interface must keep source property spelling:\n%s", out)
	}
}

func TestPropertyNameQuoting(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"plain":        "plain",
		"display_name": "display_name",
		"$ref":         "$ref",
		"content-type": `"content-type"`,
		"2fa":          `"2fa"`,
	}
	for in, want := range cases {
		if got := tsPropertyName(in); got != want {
			t.Errorf("tsPropertyName(%q) = %q, want %q", in, got, want)
		}
	}
}
