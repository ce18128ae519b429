package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The aggregated document must always carry its collection keys and a
// details object, even for a project with no child rows at all.
func TestProjectDocumentJSONShape(t *testing.T) {
	doc := ProjectDocument{
		Title:     "Bare project",
		Slug:      "bare-project",
		TechStack: []string{},
		Steps:     []StepDocument{},
		Results:   []ResultDocument{},
		Links:     []LinkDocument{},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var asMap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &asMap))

	for _, key := range []string{"tech_stack", "steps", "results", "links"} {
		require.Contains(t, asMap, key)
		assert.Equal(t, "[]", string(asMap[key]), "%s must be an empty array, not null", key)
	}

	require.Contains(t, asMap, "details")
	var details map[string]any
	require.NoError(t, json.Unmarshal(asMap["details"], &details))
	for _, key := range []string{"challenge", "solution", "timeline", "before", "after", "code_snippet"} {
		require.Contains(t, details, key)
		assert.Nil(t, details[key])
	}
}
