package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Company   string
	Position  string
}

// AuthService implements the moderation-gated authentication workflow.
type AuthService interface {
	// Register creates a pending user and its paired moderation request.
	// Returns the new user id.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login fails with domain.ErrUserNotFound, domain.ErrAccountNotApproved
	// (checked before the password), or domain.ErrInvalidPassword. On success
	// it returns a signed token and the public view of the user.
	Login(ctx context.Context, email, password string) (string, domain.PublicUser, error)
	Profile(ctx context.Context, userID string) (domain.PublicUser, error)
	// EnsureAdmin seeds the bootstrap admin account. Idempotent.
	EnsureAdmin(ctx context.Context, email, password string) error
}
