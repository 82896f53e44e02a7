package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlainObject(t *testing.T) {
	raw, err := ExtractJSON(`{"a": 1}`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, raw)
}

func TestExtractJSONFromProse(t *testing.T) {
	raw, err := ExtractJSON(`Sure! Here are your predictions: {"predictions": []} Hope that helps.`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"predictions": []}`, raw)
}

func TestExtractJSONFromCodeFence(t *testing.T) {
	input := "```json\n{\"brand_name\": \"Test\"}\n```"

	raw, err := ExtractJSON(input)

	require.NoError(t, err)
	assert.JSONEq(t, `{"brand_name": "Test"}`, raw)
}

func TestExtractJSONNestedObjects(t *testing.T) {
	raw, err := ExtractJSON(`prefix {"outer": {"inner": {"deep": true}}} suffix`)

	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Contains(t, parsed, "outer")
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	raw, err := ExtractJSON(`{"text": "a } tricky { value"}`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"text": "a } tricky { value"}`, raw)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("no json here at all")

	assert.Error(t, err)
}

func TestExtractJSONUnterminated(t *testing.T) {
	_, err := ExtractJSON(`{"open": true`)

	assert.Error(t, err)
}
