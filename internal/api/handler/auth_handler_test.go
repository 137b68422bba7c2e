package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

type stubAuthService struct {
	registerID  string
	registerErr error
	loginToken  string
	loginUser   domain.PublicUser
	loginErr    error
	profileUser domain.PublicUser
	profileErr  error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	return s.registerID, s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (domain.PublicUser, error) {
	return s.profileUser, s.profileErr
}

func (s *stubAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	return nil
}

func newTestContext(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{registerID: "user-7"}
	h := NewAuthHandler(svc)

	body := `{"email":"bob@example.com","password":"secret1","firstName":"Bob","lastName":"Stone"}`
	_, c, rec := newTestContext(http.MethodPost, "/api/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != "user-7" {
		t.Fatalf("expected userId user-7, got %q", resp.UserID)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// missing required lastName, password too short
	body := `{"email":"not-an-email","password":"abc","firstName":"Bob"}`
	_, c, _ := newTestContext(http.MethodPost, "/api/register", body)

	err := h.Register(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrDuplicateEmail}
	h := NewAuthHandler(svc)

	body := `{"email":"bob@example.com","password":"secret1","firstName":"Bob","lastName":"Stone"}`
	_, c, rec := newTestContext(http.MethodPost, "/api/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != domain.ErrDuplicateEmail.Error() {
		t.Fatalf("unexpected error message %q", resp.Error)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginToken: "signed-token",
		loginUser:  domain.PublicUser{ID: "user-1", Email: "bob@example.com"},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"bob@example.com","password":"secret1"}`
	_, c, rec := newTestContext(http.MethodPost, "/api/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if resp.User.ID != "user-1" {
		t.Fatalf("expected user in response, got %+v", resp.User)
	}
}

func TestAuthHandler_Login_FailuresMapTo400(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not_found", domain.ErrUserNotFound},
		{"not_approved", domain.ErrAccountNotApproved},
		{"bad_password", domain.ErrInvalidPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{loginErr: tc.err})

			body := `{"email":"bob@example.com","password":"secret1"}`
			_, c, rec := newTestContext(http.MethodPost, "/api/login", body)

			if err := h.Login(c); err != nil {
				t.Fatalf("Login error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error != tc.err.Error() {
				t.Fatalf("unexpected error message %q", resp.Error)
			}
		})
	}
}

func TestAuthHandler_Profile_ReturnsPublicView(t *testing.T) {
	svc := &stubAuthService{
		profileUser: domain.PublicUser{ID: "user-1", Email: "bob@example.com", FirstName: "Bob"},
	}
	h := NewAuthHandler(svc)

	_, c, rec := newTestContext(http.MethodGet, "/api/profile", "")
	c.Set("user_id", "user-1")
	c.Set("is_admin", false)

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked in profile response")
	}
}

func TestAuthHandler_Profile_MissingIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	_, c, _ := newTestContext(http.MethodGet, "/api/profile", "")

	err := h.Profile(c)
	if err == nil {
		t.Fatalf("expected error without identity in context")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
