// Package schema normalizes JSON-Schema object documents into the flat model
// representation consumed by the model generators.
package schema

import "github.com/cuppalabs/cuppa/internal/typeconv"

// ParsedModel is the normalized form of one object-rooted JSON Schema.
type ParsedModel struct {
	Name        string
	Description string
	Properties  []ParsedProperty
}

// ParsedProperty is one named field of a model. When Array is set, SourceType
// holds the element type, never "array" itself.
type ParsedProperty struct {
	Name         string
	SourceType   string
	Optional     bool
	Array        bool
	Format       string
	Description  string
	DefaultValue any
}

// TargetTypeName maps the property's source type into the given target
// language, including collection and optional wrapping.
func (p ParsedProperty) TargetTypeName(t typeconv.Target) string {
	name := typeconv.MapScalar(t, p.SourceType)
	if p.Array {
		name = typeconv.MapArray(t, name)
	}
	if p.Optional {
		name = typeconv.MapOptional(t, name)
	}
	return name
}
