package models

import "github.com/google/uuid"

// ProjectStep is one entry in a project's ordered walkthrough. Position
// drives the order the steps come back in, independent of insertion order.
type ProjectStep struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_steps_project_id;constraint:OnDelete:CASCADE"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Position    int       `json:"position" db:"position" gorm:"not null"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (ProjectStep) TableName() string { return "project_steps" }
