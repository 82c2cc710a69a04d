// Package plugin normalizes plugin spec documents and carries the built-in
// templates the plugin command synthesizes from.
package plugin

import "github.com/cuppalabs/cuppa/internal/typeconv"

// ParsedPlugin is the normalized form of one plugin spec.
type ParsedPlugin struct {
	Name       string // <Base>Plugin
	Identifier string
	Version    string
	Config     []Property
	Methods    []Method
	Models     []Model
	Providers  []Provider

	// ManagerName is always derived; ProtocolName only exists when at least
	// one provider is declared.
	ManagerName  string
	ProtocolName string
}

// HasProviders reports whether provider protocol scaffolding is requested.
func (p *ParsedPlugin) HasProviders() bool { return p.ProtocolName != "" }

// Property is a configuration or model field.
type Property struct {
	Name         string
	RawType      string
	Type         typeconv.Declared
	Required     bool
	Description  string
	DefaultValue any
}

// Method is one plugin entry point.
type Method struct {
	Name        string
	Async       bool
	Throws      bool
	Description string
	Parameters  []Param
	Returns     typeconv.Declared
}

// Param is one typed method parameter.
type Param struct {
	Name string
	Type typeconv.Declared
}

// Model is a named data shape shipped with the plugin.
type Model struct {
	Name       string
	Properties []Property
}

// Provider is one provider protocol entry.
type Provider struct {
	Name        string
	Description string
	Methods     []Method
}
