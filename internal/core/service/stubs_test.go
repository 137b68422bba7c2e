package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// In-memory stubs standing in for the mongo/redis adapters.

type stubUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) SetModerationStatus(_ context.Context, id string, status domain.ModerationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ModerationStatus = status
	return nil
}

func (r *stubUserRepo) AddPoints(_ context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Points += delta
	return nil
}

type stubModerationRepo struct {
	mu       sync.Mutex
	nextID   int
	requests []*domain.ModerationRequest
}

func newStubModerationRepo() *stubModerationRepo {
	return &stubModerationRepo{}
}

func (r *stubModerationRepo) Create(_ context.Context, req *domain.ModerationRequest) (*domain.ModerationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *req
	created.ID = fmt.Sprintf("req-%d", r.nextID)
	r.requests = append(r.requests, &created)
	return &created, nil
}

func (r *stubModerationRepo) ListPending(_ context.Context) ([]*domain.ModerationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ModerationRequest
	for _, req := range r.requests {
		if req.Status == domain.ModerationPending {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubModerationRepo) ResolvePending(_ context.Context, userID string, res ports.RequestResolution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.UserID == userID && req.Status == domain.ModerationPending {
			req.Status = res.Status
			req.ResolvedBy = res.ResolvedBy
			resolvedAt := res.ResolvedAt
			req.ResolvedAt = &resolvedAt
			req.AdminComment = res.AdminComment
			return nil
		}
	}
	return domain.ErrRequestNotFound
}

type stubProjectRepo struct {
	mu       sync.Mutex
	nextID   int
	projects []*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *p
	created.ID = fmt.Sprintf("project-%d", r.nextID)
	r.projects = append(r.projects, &created)
	return &created, nil
}

func (r *stubProjectRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) ListPublished(_ context.Context) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Project
	for _, p := range r.projects {
		if p.Status != domain.ProjectDraft {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) setStatus(id string, status domain.ProjectStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.ID == id {
			p.Status = status
		}
	}
}

type stubBlockRepo struct {
	mu     sync.Mutex
	nextID int
	blocks []*domain.PortalBlock
}

func newStubBlockRepo() *stubBlockRepo {
	return &stubBlockRepo{}
}

func (r *stubBlockRepo) Create(_ context.Context, b *domain.PortalBlock) (*domain.PortalBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *b
	created.ID = fmt.Sprintf("block-%d", r.nextID)
	r.blocks = append(r.blocks, &created)
	return &created, nil
}

func (r *stubBlockRepo) FindByID(_ context.Context, id string) (*domain.PortalBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.blocks {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBlockNotFound
}

func (r *stubBlockRepo) List(_ context.Context) ([]*domain.PortalBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.PortalBlock, 0, len(r.blocks))
	for _, b := range r.blocks {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

type stubLikeCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newStubLikeCounter() *stubLikeCounter {
	return &stubLikeCounter{counts: make(map[string]int64)}
}

func (l *stubLikeCounter) Increment(_ context.Context, blockID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[blockID]++
	return l.counts[blockID], nil
}

func (l *stubLikeCounter) Get(_ context.Context, blockID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[blockID], nil
}

func (l *stubLikeCounter) GetMany(_ context.Context, blockIDs []string) (map[string]int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int64, len(blockIDs))
	for _, id := range blockIDs {
		if n, ok := l.counts[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

// stubRecorder captures activity events synchronously.
type stubRecorder struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (r *stubRecorder) Record(e domain.ActivityEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *stubRecorder) actions() []domain.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityAction, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}
