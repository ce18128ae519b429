package database

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flowforge-ai/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// projectQuery joins the parent row against every child relation and
// collapses the join with grouped jsonb aggregation, so one project row
// yields one document no matter how many child rows exist. The multi-way
// left join produces a Cartesian product of child rows per project; DISTINCT
// inside each jsonb_agg undoes that expansion, and FILTER + COALESCE
// guarantee an empty array instead of null when a relation matched nothing.
// The details object is built unconditionally, all fields null when no
// detail row exists. Steps are sorted by position after scanning, since
// Postgres rejects an ORDER BY inside a DISTINCT aggregate unless it repeats
// the aggregated expression.
const projectQuery = `
SELECT
    p.id,
    p.title,
    p.slug,
    p.category,
    p.short_desc,
    p.cover_color,
    p.created_at,

    jsonb_build_object(
        'challenge', d.challenge,
        'solution', d.solution,
        'timeline', d.timeline,
        'before', d.before_text,
        'after', d.after_text,
        'code_snippet', d.code_snippet
    ) AS details,

    COALESCE(
        jsonb_agg(DISTINCT t.tech)
        FILTER (WHERE t.tech IS NOT NULL),
        '[]'
    ) AS tech_stack,

    COALESCE(
        jsonb_agg(
            DISTINCT jsonb_build_object(
                'title', s.title,
                'text', s.description,
                'position', s.position
            )
        ) FILTER (WHERE s.id IS NOT NULL),
        '[]'
    ) AS steps,

    COALESCE(
        jsonb_agg(
            DISTINCT jsonb_build_object(
                'label', r.label,
                'value', r.value
            )
        ) FILTER (WHERE r.id IS NOT NULL),
        '[]'
    ) AS results,

    COALESCE(
        jsonb_agg(
            DISTINCT jsonb_build_object(
                'label', l.label,
                'url', l.url,
                'icon', l.icon
            )
        ) FILTER (WHERE l.id IS NOT NULL),
        '[]'
    ) AS links

FROM projects p
LEFT JOIN project_details d ON d.project_id = p.id
LEFT JOIN project_tech_stack t ON t.project_id = p.id
LEFT JOIN project_steps s ON s.project_id = p.id
LEFT JOIN project_results r ON r.project_id = p.id
LEFT JOIN project_links l ON l.project_id = p.id
`

// Grouping includes the one-to-one join key so the query stays valid under
// strict GROUP BY rules while the ungrouped d.* columns feed the details
// object.
const projectQueryGroupBy = ` GROUP BY p.id, d.project_id`

// projectRow is the raw scan target for projectQuery. The aggregated
// columns arrive as jsonb and are decoded into the typed document.
type projectRow struct {
	ID         uuid.UUID
	Title      string
	Slug       string
	Category   *string
	ShortDesc  *string
	CoverColor *string
	CreatedAt  time.Time
	Details    datatypes.JSON
	TechStack  datatypes.JSON
	Steps      datatypes.JSON
	Results    datatypes.JSON
	Links      datatypes.JSON
}

// toDocument decodes the jsonb columns into the typed response shape and
// applies the document invariants: collection fields are never nil, and
// steps come back ordered by position.
func (row projectRow) toDocument() (models.ProjectDocument, error) {
	doc := models.ProjectDocument{
		ID:         row.ID,
		Title:      row.Title,
		Slug:       row.Slug,
		Category:   row.Category,
		ShortDesc:  row.ShortDesc,
		CoverColor: row.CoverColor,
		CreatedAt:  row.CreatedAt,
	}

	for _, col := range []struct {
		name string
		data datatypes.JSON
		dest any
	}{
		{"details", row.Details, &doc.Details},
		{"tech_stack", row.TechStack, &doc.TechStack},
		{"steps", row.Steps, &doc.Steps},
		{"results", row.Results, &doc.Results},
		{"links", row.Links, &doc.Links},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dest); err != nil {
			return models.ProjectDocument{}, fmt.Errorf("decoding %s for project %s: %w", col.name, row.ID, err)
		}
	}

	if doc.TechStack == nil {
		doc.TechStack = []string{}
	}
	if doc.Steps == nil {
		doc.Steps = []models.StepDocument{}
	}
	if doc.Results == nil {
		doc.Results = []models.ResultDocument{}
	}
	if doc.Links == nil {
		doc.Links = []models.LinkDocument{}
	}

	sort.SliceStable(doc.Steps, func(i, j int) bool {
		return doc.Steps[i].Position < doc.Steps[j].Position
	})

	return doc, nil
}

// FindAllPublished returns every published project as an aggregated
// document, newest first.
func (r *ProjectRepo) FindAllPublished() ([]models.ProjectDocument, error) {
	var rows []projectRow
	err := r.db.
		Raw(projectQuery + ` WHERE p.is_published = TRUE` + projectQueryGroupBy + ` ORDER BY p.created_at DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	docs := make([]models.ProjectDocument, 0, len(rows))
	for _, row := range rows {
		doc, err := row.toDocument()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// FindPublishedBySlug returns the aggregated document for a single
// published project, or gorm.ErrRecordNotFound when the slug matches
// nothing visible.
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.ProjectDocument, error) {
	var rows []projectRow
	err := r.db.
		Raw(projectQuery+` WHERE p.slug = ? AND p.is_published = TRUE`+projectQueryGroupBy+` LIMIT 1`, slug).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	doc, err := rows[0].toDocument()
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Add inserts a new project into the database. A slug collision surfaces as
// the driver's duplicate key error; the single-statement insert leaves the
// store unchanged in that case.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// TogglePublish flips the publish flag for a project in one atomic update
// and returns the new value. Returns gorm.ErrRecordNotFound when the id
// matches no row.
func (r *ProjectRepo) TogglePublish(id uuid.UUID) (bool, error) {
	var row struct {
		IsPublished bool
	}
	res := r.db.
		Raw(`UPDATE projects SET is_published = NOT is_published WHERE id = ? RETURNING is_published`, id).
		Scan(&row)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, gorm.ErrRecordNotFound
	}
	return row.IsPublished, nil
}
