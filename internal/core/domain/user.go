package domain

import (
	"errors"
	"time"
)

// ModerationStatus represents the lifecycle state of a user account.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// validModerationTransitions defines the allowed account state machine.
// Approved and rejected are terminal states.
var validModerationTransitions = map[ModerationStatus][]ModerationStatus{
	ModerationPending: {ModerationApproved, ModerationRejected},
}

var ErrDuplicateEmail = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrAccountNotApproved = errors.New("account pending moderation")
var ErrInvalidPassword = errors.New("invalid password")
var ErrInvalidDecision = errors.New("invalid moderation decision")
var ErrForbidden = errors.New("access forbidden")

// IsResolution reports whether s is a valid outcome of a moderation decision.
func (s ModerationStatus) IsResolution() bool {
	return s == ModerationApproved || s == ModerationRejected
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ModerationStatus) CanTransitionTo(next ModerationStatus) bool {
	for _, allowed := range validModerationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// User is the core identity aggregate. PasswordHash is excluded from JSON and
// only ever compared, never returned.
type User struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	PasswordHash     string           `json:"-"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Phone            string           `json:"phone"`
	Company          string           `json:"company"`
	Position         string           `json:"position"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	IsAdmin          bool             `json:"is_admin"`
	Points           int              `json:"points"`
	Rating           float64          `json:"rating"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// DisplayName returns the denormalized name stamped onto projects and portal blocks.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// PublicUser is the projection of User exposed at every API boundary.
// A single explicit view type so the password hash cannot leak through
// ad-hoc response shaping.
type PublicUser struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Phone            string           `json:"phone"`
	Company          string           `json:"company"`
	Position         string           `json:"position"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	IsAdmin          bool             `json:"is_admin"`
	Points           int              `json:"points"`
	Rating           float64          `json:"rating"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Public returns the safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Phone:            u.Phone,
		Company:          u.Company,
		Position:         u.Position,
		ModerationStatus: u.ModerationStatus,
		IsAdmin:          u.IsAdmin,
		Points:           u.Points,
		Rating:           u.Rating,
		CreatedAt:        u.CreatedAt,
	}
}
