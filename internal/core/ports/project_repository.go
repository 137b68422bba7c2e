package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	// ListPublished returns all projects whose status is not draft.
	ListPublished(ctx context.Context) ([]*domain.Project, error)
}
