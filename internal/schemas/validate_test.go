package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameSchema() map[string]any {
	return map[string]any{
		"$schema":  "http://json-schema.org/draft-07/schema#",
		"type":     "object",
		"required": []string{"name", "tags"},
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"score": map[string]any{"type": "number"},
			"tags":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
}

func TestCompile_InvalidDocument(t *testing.T) {
	_, err := Compile("broken", map[string]any{"type": 42})
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.Path)
}

func TestSchema_ValidateRecord(t *testing.T) {
	schema, err := Compile("names", nameSchema())
	require.NoError(t, err)
	assert.Equal(t, "names", schema.Name())

	tests := []struct {
		name      string
		record    any
		wantField string
	}{
		{
			name:   "valid",
			record: map[string]any{"name": "Go", "score": 3.5, "tags": []any{"a", "b"}},
		},
		{
			name:   "extra keys allowed",
			record: map[string]any{"name": "Go", "tags": []any{}, "extra": true},
		},
		{
			name:      "missing required",
			record:    map[string]any{"name": "Go"},
			wantField: "(root)",
		},
		{
			name:      "wrong type",
			record:    map[string]any{"name": 1.0, "tags": []any{}},
			wantField: "name",
		},
		{
			name:      "wrong nested type",
			record:    map[string]any{"name": "Go", "tags": []any{"a", 2.0}},
			wantField: "tags.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.ValidateRecord(tt.record)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Errors)
			assert.Equal(t, tt.wantField, verr.Errors[0].Field)
			assert.Contains(t, verr.Error(), "validation failed")
		})
	}
}

func TestSchema_ValidateFile(t *testing.T) {
	schema, err := Compile("names", nameSchema())
	require.NoError(t, err)

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"name": "Go", "tags": ["x"]}`), 0644))
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"tags": "x"}`), 0644))

	assert.NoError(t, schema.ValidateFile(valid))

	var verr *ValidationError
	require.ErrorAs(t, schema.ValidateFile(invalid), &verr)
	assert.GreaterOrEqual(t, len(verr.Errors), 2)

	err = schema.ValidateFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"name": "test"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{"type": "object", "required": ["name"]}`

	err := ValidateJSONString(schemaContent, `{"other": "test"}`)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 1)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `{ invalid json }`)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
