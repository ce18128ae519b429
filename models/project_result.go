package models

import "github.com/google/uuid"

// ProjectResult is a labeled outcome metric for a project.
type ProjectResult struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_results_project_id;constraint:OnDelete:CASCADE"`
	Label     string    `json:"label" db:"label" gorm:"type:text;not null"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (ProjectResult) TableName() string { return "project_results" }
