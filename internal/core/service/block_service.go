package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// BlockService implements community portal block operations. Like counts
// live in Redis and are folded into blocks at read time.
type BlockService struct {
	blocks   ports.BlockRepository
	users    ports.UserRepository
	likes    ports.LikeCounter
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewBlockService(
	blocks ports.BlockRepository,
	users ports.UserRepository,
	likes ports.LikeCounter,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *BlockService {
	return &BlockService{blocks: blocks, users: users, likes: likes, activity: activity, log: log}
}

func (s *BlockService) Create(ctx context.Context, authorID string, input ports.CreateBlockInput) (*domain.PortalBlock, error) {
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidBlockType
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	block := &domain.PortalBlock{
		Type:       input.Type,
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   author.ID,
		AuthorName: author.DisplayName(),
		CreatedAt:  now,
	}

	created, err := s.blocks.Create(ctx, block)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   author.ID,
		Action:    domain.ActivityBlockCreated,
		SubjectID: created.ID,
		Timestamp: now,
	})
	s.log.Info().Str("block_id", created.ID).Str("author_id", author.ID).Str("type", string(created.Type)).Msg("portal block created")

	return created, nil
}

func (s *BlockService) List(ctx context.Context) ([]*domain.PortalBlock, error) {
	blocks, err := s.blocks.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.ID)
	}
	counts, err := s.likes.GetMany(ctx, ids)
	if err != nil {
		// Blocks are still served; counts degrade to zero.
		s.log.Warn().Err(err).Msg("failed to load like counts")
		return blocks, nil
	}
	for _, b := range blocks {
		b.Likes = counts[b.ID]
	}
	return blocks, nil
}

func (s *BlockService) Like(ctx context.Context, blockID string) (int64, error) {
	if _, err := s.blocks.FindByID(ctx, blockID); err != nil {
		return 0, err
	}
	return s.likes.Increment(ctx, blockID)
}
