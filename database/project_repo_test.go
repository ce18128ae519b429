package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/flowforge-ai/backend/models"
)

func TestProjectRowToDocument_Defaults(t *testing.T) {
	// A project with no child rows: the query emits '[]' arrays and an
	// all-null details object.
	row := projectRow{
		ID:        uuid.New(),
		Title:     "Empty",
		Slug:      "empty",
		Details:   datatypes.JSON(`{"challenge":null,"solution":null,"timeline":null,"before":null,"after":null,"code_snippet":null}`),
		TechStack: datatypes.JSON(`[]`),
		Steps:     datatypes.JSON(`[]`),
		Results:   datatypes.JSON(`[]`),
		Links:     datatypes.JSON(`[]`),
	}

	doc, err := row.toDocument()
	require.NoError(t, err)

	assert.NotNil(t, doc.TechStack)
	assert.NotNil(t, doc.Steps)
	assert.NotNil(t, doc.Results)
	assert.NotNil(t, doc.Links)
	assert.Empty(t, doc.TechStack)
	assert.Empty(t, doc.Steps)
	assert.Empty(t, doc.Results)
	assert.Empty(t, doc.Links)

	assert.Nil(t, doc.Details.Challenge)
	assert.Nil(t, doc.Details.Solution)
	assert.Nil(t, doc.Details.CodeSnippet)
}

func TestProjectRowToDocument_MissingColumnsStayEmpty(t *testing.T) {
	// Even if a jsonb column comes back empty, the document keeps non-nil
	// collections.
	row := projectRow{ID: uuid.New(), Title: "Sparse", Slug: "sparse"}

	doc, err := row.toDocument()
	require.NoError(t, err)

	assert.NotNil(t, doc.TechStack)
	assert.NotNil(t, doc.Steps)
	assert.NotNil(t, doc.Results)
	assert.NotNil(t, doc.Links)
}

func TestProjectRowToDocument_StepsOrderedByPosition(t *testing.T) {
	row := projectRow{
		ID:    uuid.New(),
		Title: "Stepped",
		Slug:  "stepped",
		Steps: datatypes.JSON(`[
			{"title":"Ship","text":"deploy","position":3},
			{"title":"Plan","text":"sketch","position":1},
			{"title":"Build","text":"code","position":2}
		]`),
	}

	doc, err := row.toDocument()
	require.NoError(t, err)
	require.Len(t, doc.Steps, 3)

	assert.Equal(t, []models.StepDocument{
		{Title: "Plan", Text: "sketch", Position: 1},
		{Title: "Build", Text: "code", Position: 2},
		{Title: "Ship", Text: "deploy", Position: 3},
	}, doc.Steps)
}

func TestProjectRowToDocument_FullDocument(t *testing.T) {
	challenge := "tight deadline"
	icon := "github"
	row := projectRow{
		ID:        uuid.New(),
		Title:     "Full",
		Slug:      "full",
		Details:   datatypes.JSON(`{"challenge":"tight deadline","solution":null,"timeline":null,"before":null,"after":null,"code_snippet":null}`),
		TechStack: datatypes.JSON(`["go","postgres"]`),
		Results:   datatypes.JSON(`[{"label":"latency","value":"-40%"}]`),
		Links:     datatypes.JSON(`[{"label":"repo","url":"https://example.com","icon":"github"}]`),
	}

	doc, err := row.toDocument()
	require.NoError(t, err)

	assert.Equal(t, &challenge, doc.Details.Challenge)
	assert.Equal(t, []string{"go", "postgres"}, doc.TechStack)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, models.ResultDocument{Label: "latency", Value: "-40%"}, doc.Results[0])
	require.Len(t, doc.Links, 1)
	assert.Equal(t, models.LinkDocument{Label: "repo", URL: "https://example.com", Icon: &icon}, doc.Links[0])
}

func TestProjectRowToDocument_MalformedColumn(t *testing.T) {
	row := projectRow{
		ID:    uuid.New(),
		Title: "Broken",
		Slug:  "broken",
		Steps: datatypes.JSON(`{"not":"an array"}`),
	}

	_, err := row.toDocument()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "steps")
}
