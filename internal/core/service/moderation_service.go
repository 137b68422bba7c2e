package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// ModerationService implements the admin half of the account workflow:
// reviewing pending registrations and resolving them.
type ModerationService struct {
	users    ports.UserRepository
	requests ports.ModerationRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewModerationService(
	users ports.UserRepository,
	requests ports.ModerationRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *ModerationService {
	return &ModerationService{users: users, requests: requests, activity: activity, log: log}
}

func (s *ModerationService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *ModerationService) PendingRequests(ctx context.Context) ([]ports.PendingRequest, error) {
	requests, err := s.requests.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PendingRequest, 0, len(requests))
	for _, req := range requests {
		item := ports.PendingRequest{
			ID:        req.ID,
			UserID:    req.UserID,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
		}
		user, err := s.users.FindByID(ctx, req.UserID)
		if err != nil {
			// Orphaned request: keep it visible so the desync is noticed.
			s.log.Warn().Str("request_id", req.ID).Str("user_id", req.UserID).Msg("pending request references missing user")
			out = append(out, item)
			continue
		}
		item.FirstName = user.FirstName
		item.LastName = user.LastName
		item.Email = user.Email
		item.Company = user.Company
		item.Position = user.Position
		out = append(out, item)
	}
	return out, nil
}

func (s *ModerationService) Resolve(ctx context.Context, adminID, userID string, decision domain.ModerationStatus, comment string) error {
	if !decision.IsResolution() {
		return domain.ErrInvalidDecision
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.ModerationStatus.CanTransitionTo(decision) {
		return domain.ErrInvalidDecision
	}

	if err := s.users.SetModerationStatus(ctx, userID, decision); err != nil {
		return err
	}

	now := time.Now().UTC()
	err = s.requests.ResolvePending(ctx, userID, ports.RequestResolution{
		Status:       decision,
		ResolvedBy:   adminID,
		ResolvedAt:   now,
		AdminComment: comment,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			// The user's status is already updated; the ledger has no pending
			// entry to stamp. Log the inconsistency instead of guessing.
			s.log.Warn().Str("user_id", userID).Str("decision", string(decision)).
				Msg("no pending moderation request for resolved user")
		} else {
			return err
		}
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   adminID,
		Action:    domain.ActivityUserModerated,
		SubjectID: userID,
		Detail:    string(decision),
		Timestamp: now,
	})
	s.log.Info().
		Str("admin_id", adminID).
		Str("user_id", userID).
		Str("previous", string(user.ModerationStatus)).
		Str("decision", string(decision)).
		Msg("moderation decision applied")

	return nil
}
