package domain

import (
	"errors"
	"time"
)

var ErrRequestNotFound = errors.New("moderation request not found")

// ModerationRequest is the ledger entry paired with a registration.
// Its status mirrors the user's moderation status; at most one pending
// request exists per user.
type ModerationRequest struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Status       ModerationStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	ResolvedBy   string           `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time       `json:"resolved_at,omitempty"`
	AdminComment string           `json:"admin_comment,omitempty"`
}
