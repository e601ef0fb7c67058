// Package project serves the reference project list. Projects are
// immutable seed data supplied by configuration; tasks reference them by
// id without validation.
package project

import (
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

// UnknownProjectName is displayed for task project ids that do not
// resolve to a configured project.
const UnknownProjectName = "Unknown Project"

// Service resolves project ids to display data
type Service struct {
	projects []models.Project
}

// NewService creates the service from the configured project list,
// falling back to the built-in seed projects when none are configured.
func NewService(projects []models.Project) *Service {
	if len(projects) == 0 {
		projects = DefaultProjects()
	}
	return &Service{projects: projects}
}

// List returns the projects in configured order
func (s *Service) List() []models.Project {
	return append([]models.Project(nil), s.projects...)
}

// Get resolves a project id. Dangling references yield a synthetic
// placeholder carrying the same id, never an error.
func (s *Service) Get(id string) models.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return models.Project{
		ID:        id,
		Name:      UnknownProjectName,
		CreatedAt: time.Now(),
	}
}

// DefaultProjects returns the built-in seed project list
func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Name:        "Self-Service Portal",
			Description: "Complete redesign of company self-service portal",
			CreatedAt:   time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Online Shopping Portal",
			Description: "New online shopping portal development",
			CreatedAt:   time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "HRMS Portal",
			Description: "New HRMS portal development",
			CreatedAt:   time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC),
		},
	}
}
