// Package webemitter renders web (TypeScript/React) source text from
// normalized spec representations. Every generator is a pure function from a
// representation plus a source-file label to text; writing is the caller's
// job.
package webemitter

import (
	"fmt"
	"strings"
	"time"

	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// now is swapped by tests to freeze the provenance timestamp.
var now = time.Now

// header is the provenance block at the top of every generated file. The
// timestamp line is the only output that varies between runs on identical
// input.
func header(source string) []string {
	return []string{
		"// Generated by cuppa. DO NOT EDIT.",
		"// Source: " + source,
		"// Generated on: " + now().UTC().Format(time.RFC3339),
	}
}

func join(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

func mapType(src string, array bool) string {
	t := typeconv.MapScalar(typeconv.Web, src)
	if array {
		t = typeconv.MapArray(typeconv.Web, t)
	}
	return t
}

// docComment renders a JSDoc block when text is present.
func docComment(indent, text string) []string {
	if text == "" {
		return nil
	}
	return []string{indent + "/** " + text + " */"}
}

func fmtLine(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// tsPropertyName quotes names that are not valid TypeScript identifiers.
func tsPropertyName(name string) string {
	for i, r := range name {
		ok := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9')
		if !ok {
			return fmt.Sprintf("%q", name)
		}
	}
	if name == "" {
		return `""`
	}
	return name
}
