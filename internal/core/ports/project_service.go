package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a project.
type CreateProjectInput struct {
	Title       string
	Description string
	// Status defaults to draft when empty.
	Status domain.ProjectStatus
}

// PortalProject is a published project joined with owner display fields.
type PortalProject struct {
	domain.Project
	OwnerCompany string  `json:"owner_company"`
	OwnerRating  float64 `json:"owner_rating"`
}

// ProjectService implements project creation and listing.
type ProjectService interface {
	// Create persists the project and awards the fixed engagement bonus to
	// the owner's points.
	Create(ctx context.Context, ownerID string, input CreateProjectInput) (*domain.Project, error)
	ListMine(ctx context.Context, ownerID string) ([]*domain.Project, error)
	// ListPortal excludes drafts and joins owner company and rating.
	ListPortal(ctx context.Context) ([]PortalProject, error)
}
