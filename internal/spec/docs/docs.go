// Package docs provides shape-tolerant access to loosely-typed spec
// documents. Documents may be JSON or YAML; JSON parses as a YAML subset, so
// both are handled by one decoder. Mapping access preserves document order,
// which keeps generated output stable against the source file.
package docs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON document and returns its root node.
func Parse(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0], nil
	}
	if root.Kind == 0 {
		return nil, fmt.Errorf("parse document: empty input")
	}
	return &root, nil
}

// Pair is one key/value entry of a mapping node.
type Pair struct {
	Key   string
	Value *yaml.Node
}

// Mapping returns the entries of a mapping node in document order. Non-map
// nodes yield nil.
func Mapping(n *yaml.Node) []Pair {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	pairs := make([]Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, Pair{Key: n.Content[i].Value, Value: n.Content[i+1]})
	}
	return pairs
}

// Get returns the value for key in a mapping node, or nil.
func Get(n *yaml.Node, key string) *yaml.Node {
	for _, p := range Mapping(n) {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

// Seq returns the elements of a sequence node, or nil.
func Seq(n *yaml.Node) []*yaml.Node {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	return n.Content
}

// Str returns the scalar string value of a node, or "".
func Str(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// GetStr returns the string value at key, or def when absent or non-scalar.
func GetStr(n *yaml.Node, key, def string) string {
	if v := Get(n, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return def
}

// GetBool returns the boolean value at key, or def when absent or not a bool.
func GetBool(n *yaml.Node, key string, def bool) bool {
	v := Get(n, key)
	if v == nil {
		return def
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		return def
	}
	return b
}

// Value decodes any node into plain Go values (string, float64/int, bool,
// []any, map[string]any).
func Value(n *yaml.Node) any {
	if n == nil {
		return nil
	}
	var out any
	if err := n.Decode(&out); err != nil {
		return nil
	}
	return out
}

// StrList decodes a sequence of scalars; scalar nodes decode to a one-element
// list so `required: id` and `required: [id]` behave the same.
func StrList(n *yaml.Node) []string {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.ScalarNode {
		if n.Value == "" {
			return nil
		}
		return []string{n.Value}
	}
	var out []string
	for _, e := range Seq(n) {
		if s := Str(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}
