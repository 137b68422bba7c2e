package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// BlockRepository defines persistence operations for portal blocks.
type BlockRepository interface {
	Create(ctx context.Context, b *domain.PortalBlock) (*domain.PortalBlock, error)
	FindByID(ctx context.Context, id string) (*domain.PortalBlock, error)
	List(ctx context.Context) ([]*domain.PortalBlock, error)
}

// LikeCounter abstracts the per-block like counters (Redis).
type LikeCounter interface {
	Increment(ctx context.Context, blockID string) (int64, error)
	Get(ctx context.Context, blockID string) (int64, error)
	GetMany(ctx context.Context, blockIDs []string) (map[string]int64, error)
}
