package plugin

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Parse normalizes a plugin spec document. baseName is the plugin's base name
// from the CLI; the document's own name wins when present.
func Parse(root *yaml.Node, baseName string) (*ParsedPlugin, error) {
	if root == nil {
		return nil, fmt.Errorf("plugin: nil document")
	}

	base := typeconv.Pascal(docs.GetStr(root, "name", baseName))
	if base == "" {
		return nil, fmt.Errorf("plugin: missing plugin name")
	}
	base = strings.TrimSuffix(base, "Plugin")

	p := &ParsedPlugin{
		Name:        base + "Plugin",
		ManagerName: base + "Manager",
		Identifier:  strings.TrimSpace(docs.GetStr(root, "identifier", "")),
		Version:     strings.TrimSpace(docs.GetStr(root, "version", "1.0.0")),
	}
	if p.Identifier == "" {
		p.Identifier = "com.cuppa." + typeconv.Kebab(base)
	}

	p.Config = parseProperties(docs.Get(root, "configuration"))
	if len(p.Config) == 0 {
		// Every plugin gets at least a debug toggle.
		p.Config = []Property{{
			Name:         "debugLogging",
			RawType:      "boolean",
			Type:         typeconv.ParseDeclared("boolean"),
			DefaultValue: false,
			Description:  "Enables verbose plugin logging.",
		}}
	}

	for _, n := range docs.Seq(docs.Get(root, "methods")) {
		p.Methods = append(p.Methods, parseMethod(n))
	}

	for _, n := range docs.Seq(docs.Get(root, "models")) {
		p.Models = append(p.Models, Model{
			Name:       typeconv.Pascal(docs.GetStr(n, "name", "")),
			Properties: parseProperties(docs.Get(n, "properties")),
		})
	}

	for _, n := range docs.Seq(docs.Get(root, "providers")) {
		prov := Provider{
			Name:        typeconv.Pascal(docs.GetStr(n, "name", "")),
			Description: strings.TrimSpace(docs.GetStr(n, "description", "")),
		}
		for _, mn := range docs.Seq(docs.Get(n, "methods")) {
			prov.Methods = append(prov.Methods, parseMethod(mn))
		}
		p.Providers = append(p.Providers, prov)
	}

	// Protocol scaffolding is requested only when providers exist.
	if len(p.Providers) > 0 {
		p.ProtocolName = base + "Provider"
	}

	return p, nil
}

func parseProperties(n *yaml.Node) []Property {
	var out []Property
	for _, pn := range docs.Seq(n) {
		raw := docs.GetStr(pn, "type", "any")
		out = append(out, Property{
			Name:         typeconv.Camel(docs.GetStr(pn, "name", "")),
			RawType:      raw,
			Type:         typeconv.ParseDeclared(raw),
			Required:     docs.GetBool(pn, "required", false),
			Description:  strings.TrimSpace(docs.GetStr(pn, "description", "")),
			DefaultValue: docs.Value(docs.Get(pn, "default")),
		})
	}
	return out
}

func parseMethod(n *yaml.Node) Method {
	m := Method{
		Name:        typeconv.Camel(docs.GetStr(n, "name", "")),
		Async:       docs.GetBool(n, "async", false),
		Throws:      docs.GetBool(n, "throws", false),
		Description: strings.TrimSpace(docs.GetStr(n, "description", "")),
		Returns:     typeconv.ParseDeclared(docs.GetStr(n, "returns", "void")),
	}
	for _, pn := range docs.Seq(docs.Get(n, "parameters")) {
		m.Parameters = append(m.Parameters, Param{
			Name: typeconv.Camel(docs.GetStr(pn, "name", "")),
			Type: typeconv.ParseDeclared(docs.GetStr(pn, "type", "any")),
		})
	}
	return m
}
