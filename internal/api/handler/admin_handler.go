package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/portal/internal/api/metrics"
	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// AdminHandler handles the admin moderation endpoints. All routes are behind
// Auth + AdminOnly middleware.
type AdminHandler struct {
	service ports.ModerationService
}

func NewAdminHandler(service ports.ModerationService) *AdminHandler {
	return &AdminHandler{service: service}
}

type moderateUserRequest struct {
	UserID       string `json:"userId"       validate:"required"`
	Status       string `json:"status"       validate:"required,oneof=approved rejected"`
	AdminComment string `json:"adminComment"`
}

type moderateUserResponse struct {
	Message string `json:"message"`
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PublicUser
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.PublicUser{}
	}
	return c.JSON(http.StatusOK, users)
}

// ListModerationRequests handles GET /api/admin/moderation-requests.
//
// @Summary      List pending moderation requests with registrant profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.PendingRequest
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/moderation-requests [get]
func (h *AdminHandler) ListModerationRequests(c echo.Context) error {
	requests, err := h.service.PendingRequests(c.Request().Context())
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []ports.PendingRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

// ModerateUser handles POST /api/admin/moderate-user.
//
// @Summary      Approve or reject a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      moderateUserRequest  true  "Decision"
// @Success      200   {object}  moderateUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/moderate-user [post]
func (h *AdminHandler) ModerateUser(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req moderateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	decision := domain.ModerationStatus(req.Status)
	if err := h.service.Resolve(c.Request().Context(), adminID, req.UserID, decision, req.AdminComment); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues(req.Status).Inc()

	msg := "User rejected"
	if decision == domain.ModerationApproved {
		msg = "User approved"
	}
	return c.JSON(http.StatusOK, moderateUserResponse{Message: msg})
}
