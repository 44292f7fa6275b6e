package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name  string  `json:"name"`
	Carbs float64 `json:"carbs_g"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"name":"Oats","carbs_g":60}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Oats", result.Name)
	assert.Equal(t, 60.0, result.Carbs)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"name\":\"Rice Bowl\",\"carbs_g\":88}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Rice Bowl", result.Name)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your plan:\n{\"name\":\"Bagel\",\"carbs_g\":50}\nEnjoy!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bagel", result.Name)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"name":"Toast {with jam}","carbs_g":40}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Toast {with jam}", result.Name)
}

func TestExtractJSON_CommentsAndTrailingCommas(t *testing.T) {
	raw := `{
		"name": "Pasta, // not a comment",  // the main meal
		/* carbs heavy */
		"carbs_g": 120,
	}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Pasta, // not a comment", result.Name)
	assert.Equal(t, 120.0, result.Carbs)
}

func TestExtractJSON_LeadingDecimal(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"name":"Gel","carbs_g":.5}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.Carbs)

	result, err = ExtractJSON[testPayload](`{"name":"v.2","carbs_g":-.25}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.25, result.Carbs)
	assert.Equal(t, "v.2", result.Name)
}

func TestExtractJSON_TrailingCommaInArray(t *testing.T) {
	type list struct {
		Items []int `json:"items"`
	}
	result, err := ExtractJSON[list]("{\"items\": [1, 2, 3,\n]}", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result.Items)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("Sorry, I cannot help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"name":"Oats", broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Carbs < 0 {
			return fmt.Errorf("carbs must not be negative, got %v", p.Carbs)
		}
		return nil
	}
	_, err := ExtractJSON(`{"name":"Oats","carbs_g":-4}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}
