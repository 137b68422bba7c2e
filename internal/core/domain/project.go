package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the publication state of a project.
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "draft"
	ProjectProgress  ProjectStatus = "progress"
	ProjectCompleted ProjectStatus = "completed"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// ProjectCreationPoints is the engagement bonus awarded to the owner for
// every created project.
const ProjectCreationPoints = 50

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	return s == ProjectDraft || s == ProjectProgress || s == ProjectCompleted
}

// Project is a user-owned entity. OwnerName is denormalized at creation time.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	OwnerID     string        `json:"owner_id"`
	OwnerName   string        `json:"owner_name"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
