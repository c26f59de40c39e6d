package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON schema. It is immutable and may be shared
// between goroutines.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Compile parses a JSON schema document.
func Compile(name, schemaJSON string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, schema: s}, nil
}

// MustCompile is like Compile but panics on error. Meant for package-level
// schema literals.
func MustCompile(name, schemaJSON string) *Schema {
	s, err := Compile(name, schemaJSON)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks an already decoded Go value (maps, slices, structs).
func (s *Schema) Validate(document interface{}) (*ValidationResult, error) {
	return s.validate(gojsonschema.NewGoLoader(document))
}

// ValidateBytes checks a raw JSON document.
func (s *Schema) ValidateBytes(data []byte) (*ValidationResult, error) {
	return s.validate(gojsonschema.NewBytesLoader(data))
}

func (s *Schema) validate(doc gojsonschema.JSONLoader) (*ValidationResult, error) {
	result, err := s.schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validate against %s: %w", s.name, err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, re := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldName(re),
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}
	return out, nil
}

// fieldName reports the offending property; for "required" errors
// gojsonschema puts the parent in Field() and the name in Details.
func fieldName(re gojsonschema.ResultError) string {
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			return prop
		}
	}
	return re.Field()
}

// FirstError returns the first violation, or nil when the document is valid.
func (r *ValidationResult) FirstError() *ValidationError {
	if r == nil || r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// Summary joins every violation into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}
