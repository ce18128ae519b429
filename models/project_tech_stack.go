package models

import "github.com/google/uuid"

// ProjectTechStack is a single technology tag attached to a project.
type ProjectTechStack struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_tech_stack_project_id;constraint:OnDelete:CASCADE"`
	Tech      string    `json:"tech" db:"tech" gorm:"type:text;not null"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (ProjectTechStack) TableName() string { return "project_tech_stack" }
