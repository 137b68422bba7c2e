package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// ProjectService implements project creation and listing. Creating a project
// awards a fixed engagement bonus to the owner's points.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	users ports.UserRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{projects: projects, users: users, activity: activity, log: log}
}

func (s *ProjectService) Create(ctx context.Context, ownerID string, input ports.CreateProjectInput) (*domain.Project, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectDraft
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidProjectStatus
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		OwnerID:     owner.ID,
		OwnerName:   owner.DisplayName(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	if err := s.users.AddPoints(ctx, owner.ID, domain.ProjectCreationPoints); err != nil {
		// The project exists; missing points is recoverable and logged.
		s.log.Error().Err(err).Str("user_id", owner.ID).Msg("failed to award project points")
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   owner.ID,
		Action:    domain.ActivityProjectCreated,
		SubjectID: created.ID,
		Timestamp: now,
	})
	s.log.Info().Str("project_id", created.ID).Str("owner_id", owner.ID).Str("status", string(created.Status)).Msg("project created")

	return created, nil
}

func (s *ProjectService) ListMine(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}

// ListPortal returns non-draft projects joined with owner company and rating.
func (s *ProjectService) ListPortal(ctx context.Context) ([]ports.PortalProject, error) {
	projects, err := s.projects.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PortalProject, 0, len(projects))
	for _, p := range projects {
		item := ports.PortalProject{Project: *p}
		if owner, err := s.users.FindByID(ctx, p.OwnerID); err == nil {
			item.OwnerCompany = owner.Company
			item.OwnerRating = owner.Rating
		}
		out = append(out, item)
	}
	return out, nil
}
