package webemitter

import (
	"github.com/cuppalabs/cuppa/internal/spec/schema"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Model renders one parsed schema as an exported TypeScript interface.
// Property names keep their source spelling; the interface describes the wire
// shape, so there is no renaming step on this target.
func Model(m *schema.ParsedModel, source string) string {
	lines := header(source)
	lines = append(lines, "")
	lines = append(lines, modelInterface(*m)...)
	return join(lines)
}

func modelInterface(m schema.ParsedModel) []string {
	var lines []string
	lines = append(lines, docComment("", m.Description)...)
	lines = append(lines, fmtLine("export interface %s {", typeconv.Pascal(m.Name)))
	for _, p := range m.Properties {
		lines = append(lines, docComment("  ", p.Description)...)
		opt := ""
		if p.Optional {
			opt = "?"
		}
		lines = append(lines, fmtLine("  %s%s: %s;", tsPropertyName(p.Name), opt, mapType(p.SourceType, p.Array)))
	}
	lines = append(lines, "}")
	return lines
}
