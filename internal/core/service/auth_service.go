package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// bcryptCost matches the fixed cost factor the accounts were originally
// hashed with. Changing it only affects newly stored hashes.
const bcryptCost = 10

// AuthService implements registration, login, and profile lookup.
// Login is moderation-gated: the account status is checked before the
// password so an unapproved account never reaches hash comparison.
type AuthService struct {
	users    ports.UserRepository
	requests ports.ModerationRepository
	tokens   ports.TokenService
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	requests ports.ModerationRepository,
	tokens ports.TokenService,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, requests: requests, tokens: tokens, activity: activity, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:            input.Email,
		PasswordHash:     string(hash),
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Phone:            input.Phone,
		Company:          input.Company,
		Position:         input.Position,
		ModerationStatus: domain.ModerationPending,
		IsAdmin:          false,
		Points:           0,
		Rating:           0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	if _, err := s.requests.Create(ctx, &domain.ModerationRequest{
		UserID:    created.ID,
		Status:    domain.ModerationPending,
		CreatedAt: now,
	}); err != nil {
		// The account exists but the review ledger is missing its entry.
		// Surface loudly; admins can still moderate via the user list.
		s.log.Error().Err(err).Str("user_id", created.ID).Msg("failed to create moderation request")
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   created.ID,
		Action:    domain.ActivityUserRegistered,
		Timestamp: now,
	})
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered, pending moderation")

	return created.ID, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.PublicUser{}, err
	}

	// Status gate comes first: an unapproved account is rejected before the
	// password is even compared, matching the account lifecycle contract.
	if user.ModerationStatus != domain.ModerationApproved {
		return "", domain.PublicUser{}, domain.ErrAccountNotApproved
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.PublicUser{}, domain.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return "", domain.PublicUser{}, err
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   user.ID,
		Action:    domain.ActivityUserLogin,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return token, user.Public(), nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

// EnsureAdmin seeds the bootstrap admin account at startup. A no-op when the
// email is already registered.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Email:            email,
		PasswordHash:     string(hash),
		FirstName:        "Portal",
		LastName:         "Administrator",
		Company:          "ProjectHub",
		Position:         "Administrator",
		ModerationStatus: domain.ModerationApproved,
		IsAdmin:          true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.users.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil
		}
		return err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", email).Msg("bootstrap admin created")
	return nil
}
