// Package api normalizes OpenAPI documents into the endpoint/model
// representation consumed by the API client generators.
package api

import "github.com/cuppalabs/cuppa/internal/spec/schema"

// ParsedAPI is the normalized form of one OpenAPI document.
type ParsedAPI struct {
	Name      string
	Version   string
	BaseURL   string
	Endpoints []ParsedEndpoint
	Models    []schema.ParsedModel
}

// ParsedEndpoint is one operation on one path. Parameters are split by
// location; cookie parameters are not surfaced into any bucket.
type ParsedEndpoint struct {
	OperationID  string
	Method       string // lower-case HTTP method
	Path         string
	Summary      string
	PathParams   []Parameter
	QueryParams  []Parameter
	HeaderParams []Parameter
	RequestBody  *Body
	Responses    []Response
	Tags         []string
}

// Parameter is one endpoint parameter with its schema type resolved.
type Parameter struct {
	Name        string
	Required    bool
	SourceType  string
	Array       bool
	Description string
}

// Body is a request body with its schema type resolved.
type Body struct {
	ContentType string
	SourceType  string
	Array       bool
	Required    bool
}

// Response is one declared response; only the first content type per status
// code is taken.
type Response struct {
	Status      string
	Description string
	ContentType string
	SourceType  string
	Array       bool
}

// SuccessResponse returns the first 2xx response, or nil.
func (e *ParsedEndpoint) SuccessResponse() *Response {
	for i := range e.Responses {
		s := e.Responses[i].Status
		if len(s) > 0 && s[0] == '2' {
			return &e.Responses[i]
		}
	}
	return nil
}
