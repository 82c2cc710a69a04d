package swiftemitter

import (
	"github.com/cuppalabs/cuppa/internal/spec/schema"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Model renders one parsed schema as a Codable Swift struct.
func Model(m *schema.ParsedModel, source string) string {
	lines := header(source)
	lines = append(lines, "", "import Foundation", "")
	lines = append(lines, modelStruct(*m)...)
	return join(lines)
}

// modelStruct renders the struct block without the file preamble so the API
// client can embed its schema models in the same file.
func modelStruct(m schema.ParsedModel) []string {
	var lines []string
	lines = append(lines, docComment("", m.Description)...)

	name := typeconv.Pascal(m.Name)
	lines = append(lines, fmtLine("public struct %s: Codable, Equatable {", name))

	for _, p := range m.Properties {
		lines = append(lines, docComment("    ", p.Description)...)
		lines = append(lines, fmtLine("    public let %s: %s", typeconv.Camel(p.Name), p.TargetTypeName(typeconv.IOS)))
	}

	if keys := codingKeys(&m); keys != nil {
		lines = append(lines, "")
		lines = append(lines, keys...)
	}

	lines = append(lines, "", fmtLine("    public init(%s) {", joinParams(initParams(&m))))
	for _, p := range m.Properties {
		camel := typeconv.Camel(p.Name)
		lines = append(lines, fmtLine("        self.%s = %s", camel, camel))
	}
	lines = append(lines, "    }", "}")
	return lines
}

// codingKeys is emitted only when a property name changes spelling in Swift.
func codingKeys(m *schema.ParsedModel) []string {
	needed := false
	for _, p := range m.Properties {
		if typeconv.Camel(p.Name) != p.Name {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}
	lines := []string{"    enum CodingKeys: String, CodingKey {"}
	for _, p := range m.Properties {
		camel := typeconv.Camel(p.Name)
		if camel == p.Name {
			lines = append(lines, fmtLine("        case %s", camel))
		} else {
			lines = append(lines, fmtLine("        case %s = %q", camel, p.Name))
		}
	}
	lines = append(lines, "    }")
	return lines
}

func initParams(m *schema.ParsedModel) []string {
	var params []string
	for _, p := range m.Properties {
		param := fmtLine("%s: %s", typeconv.Camel(p.Name), p.TargetTypeName(typeconv.IOS))
		if p.Optional {
			param += " = nil"
		}
		params = append(params, param)
	}
	return params
}

func joinParams(params []string) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
