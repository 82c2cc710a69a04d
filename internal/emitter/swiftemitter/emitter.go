// Package swiftemitter renders iOS (Swift/SwiftUI) source text from
// normalized spec representations. Every generator is a pure function from a
// representation plus a source-file label to text; writing is the caller's
// job.
package swiftemitter

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
	t := typeconv.MapScalar(typeconv.IOS, src)
	if array {
		t = typeconv.MapArray(typeconv.IOS, t)
	}
	return t
}

// docComment renders a /// line when text is present.
func docComment(indent, text string) []string {
	if text == "" {
		return nil
	}
	return []string{indent + "/// " + text}
}

func cgFloat(v float64) string {
	return typeconv.FormatNumber(v)
}

func fmtLine(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
