package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["role"],
	"properties": {
		"role": {"type": "string", "minLength": 1},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func TestSchema_Validate(t *testing.T) {
	s := MustCompile("test", testSchema)

	tests := []struct {
		name      string
		doc       interface{}
		valid     bool
		wantField string
		wantCode  string
	}{
		{
			name:  "valid document",
			doc:   map[string]interface{}{"role": "Data Analyst", "tags": []interface{}{"a"}},
			valid: true,
		},
		{
			name:      "missing required field",
			doc:       map[string]interface{}{},
			wantField: "role",
			wantCode:  "REQUIRED",
		},
		{
			name:      "wrong type",
			doc:       map[string]interface{}{"role": 42},
			wantField: "role",
			wantCode:  "INVALID_TYPE",
		},
		{
			name:      "empty string",
			doc:       map[string]interface{}{"role": ""},
			wantField: "role",
			wantCode:  "STRING_GTE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Validate(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Nil(t, res.FirstError())
				return
			}
			first := res.FirstError()
			require.NotNil(t, first)
			assert.Equal(t, tt.wantField, first.Field)
			assert.Equal(t, tt.wantCode, first.Code)
			assert.Contains(t, res.Summary(), tt.wantField)
		})
	}
}

func TestSchema_ValidateBytes_Malformed(t *testing.T) {
	s := MustCompile("test", testSchema)
	_, err := s.ValidateBytes([]byte(`{"role":`))
	assert.Error(t, err)
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", `{"type": 12}`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile("broken", `{"type": 12}`) })
}
