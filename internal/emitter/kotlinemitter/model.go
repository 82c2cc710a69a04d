package kotlinemitter

import (
	"github.com/cuppalabs/cuppa/internal/spec/schema"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Model renders one parsed schema as a kotlinx.serialization data class.
func Model(m *schema.ParsedModel, source string) string {
	lines := header(source)
	lines = append(lines, "", "package "+generatedPackage, "")
	lines = append(lines, serializationImports(*m)...)
	lines = append(lines, "")
	lines = append(lines, dataClass(*m)...)
	return join(lines)
}

func serializationImports(m schema.ParsedModel) []string {
	lines := []string{}
	if anyRenamed(m) {
		lines = append(lines, "import kotlinx.serialization.SerialName")
	}
	return append(lines, "import kotlinx.serialization.Serializable")
}

func anyRenamed(m schema.ParsedModel) bool {
	for _, p := range m.Properties {
		if typeconv.Camel(p.Name) != p.Name {
			return true
		}
	}
	return false
}

// dataClass renders the class block without the file preamble so the API
// client can embed its schema models in the same file.
func dataClass(m schema.ParsedModel) []string {
	var lines []string
	lines = append(lines, docComment("", m.Description)...)

	name := typeconv.Pascal(m.Name)
	lines = append(lines, "@Serializable", fmtLine("data class %s(", name))

	for i, p := range m.Properties {
		lines = append(lines, docComment("    ", p.Description)...)
		decl := propertyLine(p)
		if i < len(m.Properties)-1 {
			decl += ","
		}
		lines = append(lines, decl)
	}

	lines = append(lines, ")")
	return lines
}

func propertyLine(p schema.ParsedProperty) string {
	camel := typeconv.Camel(p.Name)
	line := "    "
	if camel != p.Name {
		line += fmtLine("@SerialName(%q) ", p.Name)
	}
	line += fmtLine("val %s: %s", camel, p.TargetTypeName(typeconv.Android))
	if p.Optional {
		line += " = null"
	}
	return line
}
