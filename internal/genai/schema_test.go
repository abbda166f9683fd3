// internal/genai/schema_test.go
package genai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestSchemaValidateAcceptsConformingPayload(t *testing.T) {
	schema := Object(map[string]*Schema{
		"name":    String(),
		"score":   Number(),
		"sources": Array(StringEnum("reddit", "google")),
	}, "name")

	payload := decode(t, `{"name":"Dior Homme","score":4.5,"sources":["reddit","google"]}`)
	assert.NoError(t, schema.Validate(payload))
}

func TestSchemaValidateMissingRequired(t *testing.T) {
	schema := Object(map[string]*Schema{
		"name": String(),
	}, "name")

	err := schema.Validate(decode(t, `{"score":4.5}`))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Message, "name")
}

func TestSchemaValidateNullRequiredIsMissing(t *testing.T) {
	schema := Object(map[string]*Schema{
		"name": String(),
	}, "name")

	err := schema.Validate(decode(t, `{"name":null}`))
	assert.Error(t, err)
}

func TestSchemaValidateWrongType(t *testing.T) {
	schema := Object(map[string]*Schema{
		"score": Number(),
	})

	err := schema.Validate(decode(t, `{"score":"high"}`))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "$.score", schemaErr.Path)
}

func TestSchemaValidateEnumIsCaseInsensitive(t *testing.T) {
	schema := StringEnum("reddit", "google")

	assert.NoError(t, schema.Validate(decode(t, `"Reddit"`)))
	assert.Error(t, schema.Validate(decode(t, `"myspace"`)))
}

func TestSchemaValidateToleratesUnknownKeysAndNullOptionals(t *testing.T) {
	schema := Object(map[string]*Schema{
		"name":  String(),
		"price": Number(),
	}, "name")

	payload := decode(t, `{"name":"x","price":null,"extra":"volunteered"}`)
	assert.NoError(t, schema.Validate(payload))
}

func TestSchemaValidateNestedArrayPath(t *testing.T) {
	schema := Object(map[string]*Schema{
		"reviews": Array(Object(map[string]*Schema{
			"text": String(),
		}, "text")),
	})

	err := schema.Validate(decode(t, `{"reviews":[{"text":"ok"},{"score":1}]}`))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "$.reviews[1]", schemaErr.Path)
}
