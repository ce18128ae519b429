package models

import "github.com/google/uuid"

// ProjectDetails is the optional long-form writeup for a project, at most
// one row per project.
type ProjectDetails struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_details_project_id;constraint:OnDelete:CASCADE"`
	Challenge   *string   `json:"challenge,omitempty" db:"challenge" gorm:"type:text"`
	Solution    *string   `json:"solution,omitempty" db:"solution" gorm:"type:text"`
	Timeline    *string   `json:"timeline,omitempty" db:"timeline" gorm:"type:text"`
	BeforeText  *string   `json:"before_text,omitempty" db:"before_text" gorm:"type:text"`
	AfterText   *string   `json:"after_text,omitempty" db:"after_text" gorm:"type:text"`
	CodeSnippet *string   `json:"code_snippet,omitempty" db:"code_snippet" gorm:"type:text"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (ProjectDetails) TableName() string { return "project_details" }
