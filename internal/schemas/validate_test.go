package schemas

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": { "type": "string" }
	}
}`

func TestValidateString_Valid(t *testing.T) {
	err := ValidateString(minimalSchema, `{"name": "Frodo"}`)
	assert.NoError(t, err)
}

func TestValidateString_MissingRequiredField(t *testing.T) {
	err := ValidateString(minimalSchema, `{}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateString_InvalidSchema(t *testing.T) {
	err := ValidateString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateString_BundleSchema(t *testing.T) {
	path := ResolveSchemaPath(BundleSchemaPath)
	require.NotEmpty(t, path, "bundle schema not found")
	schemaContent, err := os.ReadFile(path)
	require.NoError(t, err)

	valid := `{
		"sections": [
			{"id": "s1", "kind": "generated", "section_type": "cover", "enabled": true, "order": 0}
		],
		"profile": {"name": "Frodo Beutlin"}
	}`
	assert.NoError(t, ValidateString(string(schemaContent), valid))

	badKind := `{
		"sections": [
			{"id": "s1", "kind": "embedded", "section_type": "cover"}
		],
		"profile": {"name": "Frodo Beutlin"}
	}`
	err = ValidateString(string(schemaContent), badKind)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateFile_SchemaNotFound(t *testing.T) {
	err := ValidateFile("/does/not/exist.json", "/also/missing.json")
	assert.Error(t, err)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/definitely_missing.schema.json"))
}
