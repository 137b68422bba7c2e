package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/portal/internal/api/metrics"
	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

// BlockHandler handles HTTP requests for community portal blocks.
type BlockHandler struct {
	service ports.BlockService
}

func NewBlockHandler(service ports.BlockService) *BlockHandler {
	return &BlockHandler{service: service}
}

type createBlockRequest struct {
	Type    string `json:"type"    validate:"required,oneof=news article question"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type likeResponse struct {
	Likes int64 `json:"likes"`
}

// List handles GET /api/portal-blocks. Public.
//
// @Summary      List portal blocks
// @Tags         blocks
// @Produce      json
// @Success      200  {array}  domain.PortalBlock
// @Router       /api/portal-blocks [get]
func (h *BlockHandler) List(c echo.Context) error {
	blocks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if blocks == nil {
		blocks = []*domain.PortalBlock{}
	}
	return c.JSON(http.StatusOK, blocks)
}

// Create handles POST /api/portal-blocks.
//
// @Summary      Publish a portal block
// @Tags         blocks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlockRequest  true  "Block content"
// @Success      201   {object}  domain.PortalBlock
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/portal-blocks [post]
func (h *BlockHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	block, err := h.service.Create(c.Request().Context(), userID, ports.CreateBlockInput{
		Type:    domain.BlockType(req.Type),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.BlocksCreatedTotal.WithLabelValues(string(block.Type)).Inc()
	return c.JSON(http.StatusCreated, block)
}

// Like handles POST /api/portal-blocks/:id/like.
//
// @Summary      Like a portal block
// @Tags         blocks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Block id"
// @Success      200  {object}  likeResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/portal-blocks/{id}/like [post]
func (h *BlockHandler) Like(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	likes, err := h.service.Like(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeResponse{Likes: likes})
}
