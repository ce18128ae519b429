package database

import (
	"gorm.io/gorm"

	"github.com/flowforge-ai/backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// AutoMigrate creates or updates the projects schema: the parent table plus
// every child table, in dependency order.
func (d Database) AutoMigrate() error {
	return d.projectRepo.db.AutoMigrate(
		&models.Project{},
		&models.ProjectDetails{},
		&models.ProjectTechStack{},
		&models.ProjectStep{},
		&models.ProjectResult{},
		&models.ProjectLink{},
	)
}
