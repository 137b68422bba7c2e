package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/portal/internal/api/metrics"
	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=draft progress completed"`
}

// Create handles POST /api/projects. The owner's points receive the fixed
// engagement bonus as a side effect.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), userID, ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.ProjectStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(string(project.Status)).Inc()
	metrics.PointsAwardedTotal.Add(domain.ProjectCreationPoints)
	return c.JSON(http.StatusCreated, project)
}

// ListMine handles GET /api/my-projects.
//
// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /api/my-projects [get]
func (h *ProjectHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

// ListPortal handles GET /api/portal-projects. Public; drafts are excluded.
//
// @Summary      List published portal projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  ports.PortalProject
// @Router       /api/portal-projects [get]
func (h *ProjectHandler) ListPortal(c echo.Context) error {
	projects, err := h.service.ListPortal(c.Request().Context())
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []ports.PortalProject{}
	}
	return c.JSON(http.StatusOK, projects)
}
