package models

import "github.com/google/uuid"

// ProjectLink is an external link (repo, demo, writeup) shown on a project.
type ProjectLink struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_links_project_id;constraint:OnDelete:CASCADE"`
	Label     string    `json:"label" db:"label" gorm:"type:text;not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	Icon      *string   `json:"icon,omitempty" db:"icon" gorm:"type:text"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (ProjectLink) TableName() string { return "project_links" }
