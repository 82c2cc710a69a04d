package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cuppalabs/cuppa/internal/spec/docs"
)

// Parse normalizes a JSON-Schema-shaped document into a ParsedModel. Only
// object-rooted schemas are supported; anything else is an input-shape error.
func Parse(root *yaml.Node) (*ParsedModel, error) {
	if root == nil {
		return nil, fmt.Errorf("schema: nil document")
	}
	if typ := resolveType(docs.Get(root, "type")); typ != "object" {
		return nil, fmt.Errorf("schema: unsupported schema type %q (only object roots are supported)", typ)
	}

	m := &ParsedModel{
		Name:        strings.TrimSpace(docs.GetStr(root, "title", "Model")),
		Description: strings.TrimSpace(docs.GetStr(root, "description", "")),
	}
	if m.Name == "" {
		m.Name = "Model"
	}

	required := make(map[string]struct{})
	for _, r := range docs.StrList(docs.Get(root, "required")) {
		required[r] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, prop := range docs.Mapping(docs.Get(root, "properties")) {
		if _, dup := seen[prop.Key]; dup {
			continue
		}
		seen[prop.Key] = struct{}{}

		_, req := required[prop.Key]
		m.Properties = append(m.Properties, parseProperty(prop.Key, prop.Value, req))
	}

	return m, nil
}

func parseProperty(name string, node *yaml.Node, required bool) ParsedProperty {
	p := ParsedProperty{
		Name:         name,
		Description:  strings.TrimSpace(docs.GetStr(node, "description", "")),
		Format:       strings.TrimSpace(docs.GetStr(node, "format", "")),
		DefaultValue: docs.Value(docs.Get(node, "default")),
	}

	typ := resolveType(docs.Get(node, "type"))
	if typ == "array" {
		p.Array = true
		typ = resolveItemType(docs.Get(node, "items"))
	}
	p.SourceType = typ

	// A property is optional when it is not required OR explicitly nullable;
	// either signal alone is enough.
	p.Optional = !required || docs.GetBool(node, "nullable", false)
	return p
}

// resolveType handles both scalar `type: string` and union `type: [string,
// "null"]` declarations, taking the first non-null entry.
func resolveType(n *yaml.Node) string {
	if n == nil {
		return "any"
	}
	if s := docs.Str(n); s != "" {
		return s
	}
	for _, e := range docs.Seq(n) {
		if v := docs.Str(e); v != "" && v != "null" {
			return v
		}
	}
	return "any"
}

// resolveItemType resolves an array's element type, following a $ref to its
// trailing path segment.
func resolveItemType(items *yaml.Node) string {
	if items == nil {
		return "any"
	}
	if ref := docs.GetStr(items, "$ref", ""); ref != "" {
		return refName(ref)
	}
	return resolveType(docs.Get(items, "type"))
}

func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
