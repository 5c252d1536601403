package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResponse(t *testing.T) {
	schema := &Schema{
		Name: "test-examples",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"examples": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    wordSchema.Definition,
				},
				"lang": map[string]any{"type": "string", "enum": []any{"hi", "mr"}},
			},
			"required": []any{"examples"},
		},
	}

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"valid", `{"examples":[{"word":"आम","meaning":"mango"}],"lang":"hi"}`, true},
		{"optional omitted", `{"examples":[{"word":"आम","meaning":"mango"}]}`, true},
		{"missing required", `{"lang":"hi"}`, false},
		{"empty array", `{"examples":[]}`, false},
		{"nested missing field", `{"examples":[{"word":"आम"}]}`, false},
		{"extra nested field", `{"examples":[{"word":"आम","meaning":"mango","x":1}]}`, false},
		{"bad enum", `{"examples":[{"word":"आम","meaning":"mango"}],"lang":"ta"}`, false},
		{"wrong type", `{"examples":"आम"}`, false},
		{"malformed", `{not json}`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(schema, json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var invalid *ErrInvalidResponse
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`anything`)))
}
