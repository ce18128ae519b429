package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectDocument is the aggregated public shape of a project: the parent
// columns plus every child collection collapsed into nested JSON. The
// collection fields are always present and never null; Details is always an
// object, with all-null fields when no detail row exists.
type ProjectDocument struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Category   *string   `json:"category"`
	ShortDesc  *string   `json:"short_desc"`
	CoverColor *string   `json:"cover_color"`
	CreatedAt  time.Time `json:"created_at"`

	Details   DetailsDocument  `json:"details"`
	TechStack []string         `json:"tech_stack"`
	Steps     []StepDocument   `json:"steps"`
	Results   []ResultDocument `json:"results"`
	Links     []LinkDocument   `json:"links"`
}

// DetailsDocument mirrors the project_details row inside a ProjectDocument.
// The before/after keys intentionally differ from the column names.
type DetailsDocument struct {
	Challenge   *string `json:"challenge"`
	Solution    *string `json:"solution"`
	Timeline    *string `json:"timeline"`
	Before      *string `json:"before"`
	After       *string `json:"after"`
	CodeSnippet *string `json:"code_snippet"`
}

type StepDocument struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type ResultDocument struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type LinkDocument struct {
	Label string  `json:"label"`
	URL   string  `json:"url"`
	Icon  *string `json:"icon"`
}
