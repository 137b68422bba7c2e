package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// CreateBlockInput carries the data needed to publish a portal block.
type CreateBlockInput struct {
	Type    domain.BlockType
	Title   string
	Content string
}

// BlockService implements community portal block operations.
type BlockService interface {
	Create(ctx context.Context, authorID string, input CreateBlockInput) (*domain.PortalBlock, error)
	// List returns all blocks with their current like counts folded in.
	List(ctx context.Context) ([]*domain.PortalBlock, error)
	// Like increments the block's like counter and returns the new count.
	Like(ctx context.Context, blockID string) (int64, error)
}
