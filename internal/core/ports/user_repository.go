package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	// FindByEmail performs a case-sensitive exact match.
	// Returns domain.ErrUserNotFound on miss.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts a new user. Returns domain.ErrDuplicateEmail when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// SetModerationStatus is idempotent; domain.ErrUserNotFound when absent.
	SetModerationStatus(ctx context.Context, id string, status domain.ModerationStatus) error
	// AddPoints atomically increments the user's points by delta.
	AddPoints(ctx context.Context, id string, delta int) error
}
