package swiftemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/plugin"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Plugin renders the multi-file plugin scaffold: the plugin class, a manager
// singleton, the provider protocol when providers are declared, model
// structs, and a README describing the scaffold.
func Plugin(p *plugin.ParsedPlugin, source string) map[string]string {
	files := map[string]string{
		p.Name + ".swift":        pluginFile(p, source),
		p.ManagerName + ".swift": managerFile(p, source),
		"README.md":              readmeFile(p),
	}
	if p.HasProviders() {
		files[p.ProtocolName+".swift"] = providerFile(p, source)
	}
	if len(p.Models) > 0 {
		files["Models.swift"] = modelsFile(p, source)
	}
	return files
}

func pluginFile(p *plugin.ParsedPlugin, source string) string {
	lines := header(source)
	lines = append(lines, "", "import Foundation", "")

	// Configuration first so the plugin initializer can reference it.
	lines = append(lines, fmtLine("public struct %sConfiguration {", p.Name))
	for _, c := range p.Config {
		lines = append(lines, docComment("    ", c.Description)...)
		lines = append(lines, fmtLine("    public var %s: %s%s", c.Name, c.Type.TargetName(typeconv.IOS), swiftDefault(c)))
	}
	lines = append(lines, "", "    public init() {}", "}", "")

	lines = append(lines, fmtLine("public final class %s {", p.Name))
	lines = append(lines,
		fmtLine("    public static let identifier = %q", p.Identifier),
		fmtLine("    public static let version = %q", p.Version),
		"",
		fmtLine("    public let configuration: %sConfiguration", p.Name),
	)
	if p.HasProviders() {
		lines = append(lines, fmtLine("    public weak var provider: (any %s)?", p.ProtocolName))
	}
	lines = append(lines,
		"",
		fmtLine("    public init(configuration: %sConfiguration = .init()) {", p.Name),
		"        self.configuration = configuration",
		"    }",
	)

	for _, m := range p.Methods {
		lines = append(lines, "")
		lines = append(lines, methodStub(m)...)
	}
	lines = append(lines, "}")
	return join(lines)
}

func methodStub(m plugin.Method) []string {
	var lines []string
	lines = append(lines, docComment("    ", m.Description)...)
	lines = append(lines, fmtLine("    public func %s(%s)%s {", m.Name, methodParams(m), methodEffects(m)))
	if m.Returns.Base != "void" {
		lines = append(lines, fmtLine("        fatalError(\"%s is not implemented yet\")", m.Name))
	} else {
		lines = append(lines, "        // Plugin implementations fill this in.")
	}
	lines = append(lines, "    }")
	return lines
}

func methodParams(m plugin.Method) string {
	var params []string
	for _, p := range m.Parameters {
		params = append(params, fmtLine("%s: %s", p.Name, p.Type.TargetName(typeconv.IOS)))
	}
	return strings.Join(params, ", ")
}

func methodEffects(m plugin.Method) string {
	out := ""
	if m.Async {
		out += " async"
	}
	if m.Throws {
		out += " throws"
	}
	if m.Returns.Base != "void" {
		out += " -> " + m.Returns.TargetName(typeconv.IOS)
	}
	return out
}

func managerFile(p *plugin.ParsedPlugin, source string) string {
	lines := header(source)
	lines = append(lines, "", "import Foundation", "")
	lines = append(lines,
		fmtLine("/// Owns the shared %s instance and its lifecycle.", p.Name),
		fmtLine("public final class %s {", p.ManagerName),
		fmtLine("    public static let shared = %s()", p.ManagerName),
		"",
		fmtLine("    public private(set) var plugin: %s?", p.Name),
		"",
		"    private init() {}",
		"",
		fmtLine("    public func register(configuration: %sConfiguration = .init()) -> %s {", p.Name, p.Name),
		fmtLine("        let plugin = %s(configuration: configuration)", p.Name),
		"        self.plugin = plugin",
		"        return plugin",
		"    }",
		"",
		"    public func unregister() {",
		"        plugin = nil",
		"    }",
		"}",
	)
	return join(lines)
}

func providerFile(p *plugin.ParsedPlugin, source string) string {
	lines := header(source)
	lines = append(lines, "", "import Foundation", "")
	for _, prov := range p.Providers {
		lines = append(lines, docComment("", prov.Description)...)
	}
	lines = append(lines, fmtLine("public protocol %s: AnyObject {", p.ProtocolName))
	for _, prov := range p.Providers {
		for _, m := range prov.Methods {
			lines = append(lines, fmtLine("    func %s(%s)%s", m.Name, methodParams(m), methodEffects(m)))
		}
	}
	lines = append(lines, "}")
	return join(lines)
}

func modelsFile(p *plugin.ParsedPlugin, source string) string {
	lines := header(source)
	lines = append(lines, "", "import Foundation")
	for _, m := range p.Models {
		lines = append(lines, "")
		lines = append(lines, fmtLine("public struct %s: Codable, Equatable {", m.Name))
		for _, prop := range m.Properties {
			lines = append(lines, docComment("    ", prop.Description)...)
			lines = append(lines, fmtLine("    public var %s: %s", prop.Name, propertyType(prop)))
		}
		lines = append(lines, "}")
	}
	return join(lines)
}

func propertyType(p plugin.Property) string {
	t := p.Type.TargetName(typeconv.IOS)
	if !p.Required && !p.Type.Optional {
		t += "?"
	}
	return t
}

func swiftDefault(c plugin.Property) string {
	switch v := c.DefaultValue.(type) {
	case nil:
		if !c.Required && !c.Type.Optional {
			return "?"
		}
		return ""
	case bool:
		if v {
			return " = true"
		}
		return " = false"
	case string:
		return fmtLine(" = %q", v)
	case int:
		return fmtLine(" = %d", v)
	case float64:
		return " = " + typeconv.FormatNumber(v)
	default:
		return ""
	}
}

func readmeFile(p *plugin.ParsedPlugin) string {
	var b strings.Builder
	b.WriteString("# " + p.Name + "\n\n")
	b.WriteString("Generated plugin scaffold. Identifier `" + p.Identifier + "`, version " + p.Version + ".\n\n")
	b.WriteString("## Files\n\n")
	b.WriteString("- `" + p.Name + ".swift`: plugin entry point and configuration.\n")
	b.WriteString("- `" + p.ManagerName + ".swift`: registration and lifecycle.\n")
	if p.HasProviders() {
		b.WriteString("- `" + p.ProtocolName + ".swift`: provider protocol the host implements.\n")
	}
	if len(p.Models) > 0 {
		b.WriteString("- `Models.swift`: data shapes shipped with the plugin.\n")
	}
	b.WriteString("\n## Usage\n\n")
	b.WriteString("```swift\nlet plugin = " + p.ManagerName + ".shared.register()\n```\n")
	return b.String()
}
