// Package component normalizes UI component spec documents into the form the
// component generators consume.
package component

import "github.com/cuppalabs/cuppa/internal/typeconv"

// ParsedComponent is the normalized form of one component spec. The derived
// flags are computed once at parse time; generators use them to pick
// structural variants such as initializer overloads.
type ParsedComponent struct {
	Name        string
	Category    string
	Description string
	Properties  []Property
	Style       Style
	States      []State
	Actions     []Action
	Slots       []Slot

	HasAsyncAction  bool
	HasLoadingState bool
}

// Property is one declared component property. Binding-wrapped declarations
// (two-way bound values) carry the flag on the resolved type.
type Property struct {
	Name         string
	RawType      string
	Type         typeconv.Declared
	Required     bool
	Description  string
	DefaultValue any
}

// IsBinding reports whether the property was declared as a binding wrapper.
func (p Property) IsBinding() bool { return p.Type.Binding }

// Style is the normalized style block.
type Style struct {
	Padding         Padding
	CornerRadius    float64
	BackgroundColor string
	ForegroundColor string
}

// Padding always carries four explicit sides.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform reports whether all four sides are equal.
func (p Padding) Uniform() bool {
	return p.Top == p.Right && p.Right == p.Bottom && p.Bottom == p.Left
}

// State is one named visual state with its style overrides.
type State struct {
	Name        string
	Description string
	Overrides   map[string]any
}

// Action is one component callback.
type Action struct {
	Name        string
	Async       bool
	Parameters  []ActionParam
	Returns     string
	Description string
}

// ActionParam is one typed action parameter.
type ActionParam struct {
	Name string
	Type typeconv.Declared
}

// Slot is a named content insertion point.
type Slot struct {
	Name        string
	Description string
}
