package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// Exercises the whole account lifecycle against shared stores: registration,
// blocked login, admin approval, login, project creation, and listings.
func TestAccountLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	requests := newStubModerationRepo()
	projects := newStubProjectRepo()
	recorder := &stubRecorder{}
	tokens := NewTokenService("secret", time.Hour)

	auth := NewAuthService(users, requests, tokens, recorder, zerolog.Nop())
	mod := NewModerationService(users, requests, recorder, zerolog.Nop())
	projectSvc := NewProjectService(projects, users, recorder, zerolog.Nop())

	if err := auth.EnsureAdmin(ctx, "admin@projecthub.ru", "admin123"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	admin, _ := users.FindByEmail(ctx, "admin@projecthub.ru")

	// Bob registers and immediately tries to log in.
	bobID, err := auth.Register(ctx, registerInput("bob@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := auth.Login(ctx, "bob@example.com", "s3cret-pass"); !errors.Is(err, domain.ErrAccountNotApproved) {
		t.Fatalf("expected ErrAccountNotApproved, got %v", err)
	}

	// The admin sees exactly one pending request and approves it.
	pending, _ := mod.PendingRequests(ctx)
	if len(pending) != 1 || pending[0].UserID != bobID {
		t.Fatalf("unexpected pending queue: %+v", pending)
	}
	if err := mod.Resolve(ctx, admin.ID, bobID, domain.ModerationApproved, "welcome"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// Now login succeeds and the claims identify Bob.
	token, _, err := auth.Login(ctx, "bob@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login after approval: %v", err)
	}
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != bobID || claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// Bob creates a draft project.
	project, err := projectSvc.Create(ctx, claims.UserID, ports.CreateProjectInput{
		Title:       "Community Garden",
		Description: "Planting season",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	mine, _ := projectSvc.ListMine(ctx, bobID)
	if len(mine) != 1 || mine[0].ID != project.ID {
		t.Fatalf("my-projects mismatch: %+v", mine)
	}

	bob, _ := users.FindByID(ctx, bobID)
	if bob.Points != domain.ProjectCreationPoints {
		t.Fatalf("expected %d points, got %d", domain.ProjectCreationPoints, bob.Points)
	}

	// The draft stays off the portal until its status changes.
	portal, _ := projectSvc.ListPortal(ctx)
	if len(portal) != 0 {
		t.Fatalf("draft leaked to portal: %+v", portal)
	}
	projects.setStatus(project.ID, domain.ProjectProgress)
	portal, _ = projectSvc.ListPortal(ctx)
	if len(portal) != 1 || portal[0].ID != project.ID {
		t.Fatalf("portal listing mismatch: %+v", portal)
	}
}
