package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages_TextOnly(t *testing.T) {
	messages := buildMessages(Request{
		System: "You are a copywriter.",
		User:   "Write a tagline.",
	})

	require.Len(t, messages, 2)
	assert.NotNil(t, messages[0].OfSystem)
	assert.NotNil(t, messages[1].OfUser)
}

func TestBuildMessages_NoSystem(t *testing.T) {
	messages := buildMessages(Request{User: "Just a question."})

	require.Len(t, messages, 1)
	assert.NotNil(t, messages[0].OfUser)
}

func TestBuildMessages_WithImage(t *testing.T) {
	messages := buildMessages(Request{
		User:     "Describe this product.",
		ImageURL: "https://example.com/p.jpg",
	})

	require.Len(t, messages, 1)
	require.NotNil(t, messages[0].OfUser)

	parts := messages[0].OfUser.Content.OfArrayOfContentParts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].OfText)
	assert.Equal(t, "Describe this product.", parts[0].OfText.Text)
	require.NotNil(t, parts[1].OfImageURL)
	assert.Equal(t, "https://example.com/p.jpg", parts[1].OfImageURL.ImageURL.URL)
}

func TestResolveModel(t *testing.T) {
	c := NewOpenAI(WithAPIKey("test-key"), WithModel("gpt-4o"))

	assert.Equal(t, "gpt-4o", c.resolveModel(Request{}))
	assert.Equal(t, "gpt-4o-mini", c.resolveModel(Request{Model: "gpt-4o-mini"}))
}

func TestNewOpenAI_Defaults(t *testing.T) {
	c := NewOpenAI(WithAPIKey("test-key"))
	assert.Equal(t, DefaultModel, c.model)
	assert.Nil(t, c.temperature)
}

func TestResolveTemperature(t *testing.T) {
	plain := NewOpenAI(WithAPIKey("test-key"))
	withDefault := NewOpenAI(WithAPIKey("test-key"), WithTemperature(0.5))

	// An explicit request temperature always wins, zero included.
	temp, ok := plain.resolveTemperature(Request{Temperature: Float(0)})
	require.True(t, ok, "explicit 0 must be transmitted")
	assert.Zero(t, temp)

	temp, ok = withDefault.resolveTemperature(Request{Temperature: Float(0)})
	require.True(t, ok)
	assert.Zero(t, temp)

	temp, ok = withDefault.resolveTemperature(Request{Temperature: Float(0.9)})
	require.True(t, ok)
	assert.Equal(t, 0.9, temp)

	// Unset falls back to the client default, then to nothing at all.
	temp, ok = withDefault.resolveTemperature(Request{})
	require.True(t, ok)
	assert.Equal(t, 0.5, temp)

	_, ok = plain.resolveTemperature(Request{})
	assert.False(t, ok)
}

func TestForbidAdditionalProperties(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"value": map[string]any{"type": "number"},
					},
				},
			},
		},
	}

	forbidAdditionalProperties(schema)

	assert.Equal(t, false, schema["additionalProperties"])

	items := schema["properties"].(map[string]any)["scores"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, false, items["additionalProperties"])

	value := items["properties"].(map[string]any)["value"].(map[string]any)
	_, tagged := value["additionalProperties"]
	assert.False(t, tagged, "non-object schemas stay untouched")
}

func TestBuildSchemaFormat(t *testing.T) {
	format, err := buildSchemaFormat(SchemaFor("scores", "numeric scores", `{"type": "object", "properties": {"value": {"type": "number"}}}`))
	require.NoError(t, err)

	require.NotNil(t, format.OfJSONSchema)
	assert.Equal(t, "scores", format.OfJSONSchema.JSONSchema.Name)

	schemaMap, ok := format.OfJSONSchema.JSONSchema.Schema.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, schemaMap["additionalProperties"])
}

func TestBuildSchemaFormat_DefaultName(t *testing.T) {
	format, err := buildSchemaFormat(&ResponseSchema{Schema: []byte(`{"type": "object"}`)})
	require.NoError(t, err)
	require.NotNil(t, format.OfJSONSchema)
	assert.Equal(t, "response_schema", format.OfJSONSchema.JSONSchema.Name)
}

func TestBuildSchemaFormat_NonObjectSchema(t *testing.T) {
	// A hand-built ResponseSchema can hold valid JSON that is not an
	// object; that must error rather than send a nil schema.
	for _, doc := range []string{`["a"]`, `null`, `{"broken"`} {
		_, err := buildSchemaFormat(&ResponseSchema{Name: "bad", Schema: []byte(doc)})
		assert.ErrorContains(t, err, `schema "bad" is not a JSON object`)
	}
}
