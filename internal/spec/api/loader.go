package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// ErrorCode categorizes loader errors for clearer handling and messaging.
type ErrorCode string

const (
	InputError      ErrorCode = "InputError"
	ParseError      ErrorCode = "ParseError"
	ValidationError ErrorCode = "ValidationError"
)

// SpecError is a structured error with the offending location attached.
type SpecError struct {
	Code     ErrorCode
	Message  string
	Location string
	Cause    error
}

func (e *SpecError) Error() string { return e.Message }
func (e *SpecError) Unwrap() error { return e.Cause }

// Load reads and validates an OpenAPI v3 document (JSON or YAML) from a local
// file. Validation is permissive about unresolved refs so best-effort
// generation can proceed.
func Load(ctx context.Context, path string) (*openapi3.T, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &SpecError{Code: InputError, Message: "api: spec path is empty"}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &SpecError{Code: InputError, Message: fmt.Sprintf("resolve path: %v", err), Location: path, Cause: err}
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, &SpecError{Code: InputError, Message: fmt.Sprintf("read file %s: %v", abs, err), Location: abs, Cause: err}
	}

	if err := checkSpecVersion(raw); err != nil {
		return nil, &SpecError{Code: ParseError, Message: err.Error(), Location: abs, Cause: err}
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	doc, err := loader.LoadFromFile(abs)
	if err != nil {
		return nil, &SpecError{Code: ParseError, Message: err.Error(), Location: abs, Cause: err}
	}
	if err := doc.Validate(ctx); err != nil {
		if !canProceedDespiteValidation(err) {
			return nil, &SpecError{Code: ValidationError, Message: err.Error(), Location: abs, Cause: err}
		}
		// proceed in permissive mode
	}
	return doc, nil
}

// checkSpecVersion rejects anything that does not declare OpenAPI 3.x.
func checkSpecVersion(data []byte) error {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("parse spec: %w", err)
	}
	if v, ok := root["openapi"]; ok {
		if s, _ := v.(string); strings.HasPrefix(strings.TrimSpace(s), "3.") {
			return nil
		}
	}
	if _, ok := root["swagger"]; ok {
		return fmt.Errorf("api: Swagger 2.0 documents are not supported (expected 'openapi: 3.x')")
	}
	return fmt.Errorf("api: missing or unknown version (expected 'openapi: 3.x')")
}

// canProceedDespiteValidation returns true for validation errors where a
// best-effort build can still proceed (e.g., unresolved $ref entries).
func canProceedDespiteValidation(err error) bool {
	if err == nil {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unresolved ref") || strings.Contains(s, "found unresolved ref")
}
