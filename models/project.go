package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is the parent catalog row. Child collections hang off project_id
// foreign keys and are folded into a ProjectDocument on the read path.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_slug"`
	Category    *string   `json:"category,omitempty" db:"category" gorm:"type:text"`
	ShortDesc   *string   `json:"short_desc,omitempty" db:"short_desc" gorm:"type:text"`
	CoverColor  *string   `json:"cover_color,omitempty" db:"cover_color" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	IsPublished bool      `json:"is_published" db:"is_published" gorm:"not null;default:false"`

	Details   *ProjectDetails    `json:"details,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	TechStack []ProjectTechStack `json:"tech_stack,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Steps     []ProjectStep      `json:"steps,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Results   []ProjectResult    `json:"results,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Links     []ProjectLink      `json:"links,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string { return "projects" }

// NormalizeSlug lowercases and trims a user-supplied slug before it is
// stored or matched. The unique index on projects.slug operates on the
// normalized form.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
