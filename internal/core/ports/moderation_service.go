package ports

import (
	"context"
	"time"

	"github.com/projecthub/portal/internal/core/domain"
)

// PendingRequest is a moderation request joined with the registrant's profile
// for the admin review screen.
type PendingRequest struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Status    domain.ModerationStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	Email     string                  `json:"email"`
	Company   string                  `json:"company"`
	Position  string                  `json:"position"`
}

// ModerationService implements the admin half of the account workflow.
type ModerationService interface {
	ListUsers(ctx context.Context) ([]domain.PublicUser, error)
	PendingRequests(ctx context.Context) ([]PendingRequest, error)
	// Resolve applies an approve/reject decision to a user and its pending
	// request. domain.ErrInvalidDecision for any other status value or when
	// the account is already resolved; domain.ErrUserNotFound when the user
	// is absent.
	Resolve(ctx context.Context, adminID, userID string, decision domain.ModerationStatus, comment string) error
}
