package ports

import (
	"context"
	"time"

	"github.com/projecthub/portal/internal/core/domain"
)

// RequestResolution carries the metadata stamped onto a moderation request
// when an admin resolves it.
type RequestResolution struct {
	Status       domain.ModerationStatus
	ResolvedBy   string
	ResolvedAt   time.Time
	AdminComment string
}

// ModerationRepository defines persistence operations for moderation requests.
type ModerationRepository interface {
	Create(ctx context.Context, req *domain.ModerationRequest) (*domain.ModerationRequest, error)
	ListPending(ctx context.Context) ([]*domain.ModerationRequest, error)
	// ResolvePending transitions the single pending request for userID.
	// Returns domain.ErrRequestNotFound when no pending request exists.
	ResolvePending(ctx context.Context, userID string, res RequestResolution) error
}
