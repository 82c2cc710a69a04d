package typeconv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Target identifies an output platform ecosystem.
type Target string

const (
	IOS     Target = "ios"
	Android Target = "android"
	Web     Target = "web"
)

// AllTargets lists every known target in a stable order.
func AllTargets() []Target { return []Target{IOS, Android, Web} }

// ParseTarget normalizes a user-supplied platform name.
func ParseTarget(s string) (Target, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ios", "swift", "swiftui":
		return IOS, true
	case "android", "kotlin", "compose":
		return Android, true
	case "web", "ts", "typescript", "react":
		return Web, true
	}
	return "", false
}

// Scalar type spellings per target. Source types follow JSON Schema naming
// plus a few convenience aliases used by component and plugin specs.
var swiftScalars = map[string]string{
	"string":  "String",
	"integer": "Int",
	"int":     "Int",
	"number":  "Double",
	"double":  "Double",
	"boolean": "Bool",
	"bool":    "Bool",
	"object":  "[String: Any]",
	"any":     "Any",
	"void":    "Void",
	"date":    "Date",
	"url":     "URL",
	"data":    "Data",
}

var kotlinScalars = map[string]string{
	"string":  "String",
	"integer": "Int",
	"int":     "Int",
	"number":  "Double",
	"double":  "Double",
	"boolean": "Boolean",
	"bool":    "Boolean",
	"object":  "Map<String, Any>",
	"any":     "Any",
	"void":    "Unit",
	"date":    "Instant",
	"url":     "String",
	"data":    "ByteArray",
}

var webScalars = map[string]string{
	"string":  "string",
	"integer": "number",
	"int":     "number",
	"number":  "number",
	"double":  "number",
	"boolean": "boolean",
	"bool":    "boolean",
	"object":  "Record<string, unknown>",
	"any":     "unknown",
	"void":    "void",
	"date":    "string",
	"url":     "string",
	"data":    "Uint8Array",
}

// MapScalar returns the target-language spelling of a source scalar type.
// Unrecognized source types pass through unchanged; this is the deliberate
// fallback that lets schema reference names ("User", "Pet") keep their
// spelling in generated code.
func MapScalar(t Target, src string) string {
	src = strings.TrimSpace(src)
	var table map[string]string
	switch t {
	case IOS:
		table = swiftScalars
	case Android:
		table = kotlinScalars
	case Web:
		table = webScalars
	default:
		return src
	}
	if mapped, ok := table[strings.ToLower(src)]; ok {
		return mapped
	}
	return src
}

// MapArray wraps an already-mapped element type in the target's collection
// spelling.
func MapArray(t Target, elem string) string {
	switch t {
	case IOS:
		return "[" + elem + "]"
	case Android:
		return "List<" + elem + ">"
	default:
		return elem + "[]"
	}
}

// MapOptional wraps an already-mapped type in the target's optional spelling.
func MapOptional(t Target, inner string) string {
	switch t {
	case IOS, Android:
		return inner + "?"
	default:
		return inner + " | null"
	}
}

// Declared is a component/plugin property type declaration with its wrapper
// suffixes resolved: `T?`, `T[]`, and `Binding<T>` in any nesting.
type Declared struct {
	Base     string
	Array    bool
	Optional bool
	Binding  bool
}

// ParseDeclared unwraps a declared type string recursively so that `T[]?`
// and `Binding<T[]>` resolve to their innermost base type.
func ParseDeclared(s string) Declared {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "?") {
		d := ParseDeclared(strings.TrimSuffix(s, "?"))
		d.Optional = true
		return d
	}
	if inner, ok := strings.CutPrefix(s, "Binding<"); ok && strings.HasSuffix(inner, ">") {
		d := ParseDeclared(strings.TrimSuffix(inner, ">"))
		d.Binding = true
		return d
	}
	if strings.HasSuffix(s, "[]") {
		d := ParseDeclared(strings.TrimSuffix(s, "[]"))
		d.Array = true
		return d
	}
	if s == "" {
		return Declared{Base: "any"}
	}
	return Declared{Base: s}
}

// TargetName renders the declaration in the target language. Binding is a
// generator concern (property wrappers, not type spelling) and is ignored
// here.
func (d Declared) TargetName(t Target) string {
	name := MapScalar(t, d.Base)
	if d.Array {
		name = MapArray(t, name)
	}
	if d.Optional {
		name = MapOptional(t, name)
	}
	return name
}

// Camel rewrites hyphen/underscore/space separated names into camelCase
// identifiers: "primary-dark" -> "primaryDark". Names that are already
// camelCase come back unchanged.
func Camel(s string) string {
	parts := splitName(s)
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lowerFirst(parts[0]))
	for _, p := range parts[1:] {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// Pascal is Camel with the first letter capitalized.
func Pascal(s string) string {
	return upperFirst(Camel(s))
}

// Kebab rewrites a name into kebab-case: "primaryDark" -> "primary-dark".
func Kebab(s string) string {
	parts := splitName(s)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, "-")
}

func splitName(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	repl := strings.NewReplacer("-", " ", "_", " ", ".", " ")
	fields := strings.Fields(repl.Replace(s))
	var parts []string
	for _, f := range fields {
		parts = append(parts, splitCamelWord(f)...)
	}
	return parts
}

func splitCamelWord(w string) []string {
	var parts []string
	start := 0
	runes := []rune(w)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// UnitValue is a numeric magnitude plus a CSS-style unit string.
type UnitValue struct {
	Value float64
	Unit  string
}

var unitRe = regexp.MustCompile(`^\s*(-?[0-9]*\.?[0-9]+)\s*([a-zA-Z%]*)\s*$`)

// ParseUnitValue splits values like "16px", "1.5rem", or bare numbers into a
// magnitude and a unit. Bare numbers and strings without a recognizable unit
// default to "px". Strings that do not start with a number parse to 0px
// rather than failing; callers that care should validate upstream.
func ParseUnitValue(v any) UnitValue {
	switch n := v.(type) {
	case int:
		return UnitValue{Value: float64(n), Unit: "px"}
	case int64:
		return UnitValue{Value: float64(n), Unit: "px"}
	case float64:
		return UnitValue{Value: n, Unit: "px"}
	case float32:
		return UnitValue{Value: float64(n), Unit: "px"}
	case string:
		m := unitRe.FindStringSubmatch(n)
		if m == nil {
			return UnitValue{Value: 0, Unit: "px"}
		}
		val, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return UnitValue{Value: 0, Unit: "px"}
		}
		unit := m[2]
		if unit == "" {
			unit = "px"
		}
		return UnitValue{Value: val, Unit: unit}
	default:
		return UnitValue{Value: 0, Unit: "px"}
	}
}

// String renders the value with its unit, trimming trailing zeros from the
// magnitude so "8px" round-trips as "8px" rather than "8.000000px".
func (u UnitValue) String() string {
	return fmt.Sprintf("%s%s", FormatNumber(u.Value), u.Unit)
}

// FormatNumber renders a float without a trailing ".0" when it is integral.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}
