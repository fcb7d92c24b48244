package marks

import (
	"errors"

	"catalog-manager/core/logger"
	"catalog-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for marks.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the marks routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/marks")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleClear)
	group.Get("/share", h.HandleShareLink)
	group.Post("/share", h.HandleLoadShare)
	group.Get("/progress/:source", h.HandleProgress)
	group.Put("/:id", h.HandleMark)
	group.Delete("/:id", h.HandleUnmark)
}

type idsResponse struct {
	IDs []string `json:"ids"`
}

type shareRequest struct {
	Link string `json:"link"`
}

// HandleList returns the marked ids.
// @Summary List Marks
// @Tags marks
// @Produce json
// @Success 200 {object} idsResponse
// @Failure 500 {object} map[string]string
// @Router /marks [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	ids, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "List marks failed", err)
	}
	return c.JSON(idsResponse{IDs: ids})
}

// HandleMark marks one record.
// @Summary Mark Record
// @Tags marks
// @Param id path string true "Record id"
// @Success 204
// @Router /marks/{id} [put]
func (h *Handler) HandleMark(c *fiber.Ctx) error {
	if err := h.service.Set(c.Context(), c.Params("id"), true); err != nil {
		return h.fail(c, "Mark failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUnmark unmarks one record.
// @Summary Unmark Record
// @Tags marks
// @Param id path string true "Record id"
// @Success 204
// @Router /marks/{id} [delete]
func (h *Handler) HandleUnmark(c *fiber.Ctx) error {
	if err := h.service.Set(c.Context(), c.Params("id"), false); err != nil {
		return h.fail(c, "Unmark failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClear removes every mark.
// @Summary Clear Marks
// @Tags marks
// @Success 204
// @Router /marks [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context()); err != nil {
		return h.fail(c, "Clear marks failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleShareLink returns the share fragment of the marked set.
// @Summary Share Link
// @Tags marks
// @Produce json
// @Success 200 {object} map[string]string
// @Router /marks/share [get]
func (h *Handler) HandleShareLink(c *fiber.Ctx) error {
	link, err := h.service.ShareLink(c.Context())
	if err != nil {
		return h.fail(c, "Share link failed", err)
	}
	return c.JSON(fiber.Map{"link": link})
}

// HandleLoadShare replaces the marked set with a share link's ids.
// @Summary Load Share Link
// @Tags marks
// @Accept json
// @Produce json
// @Param body body shareRequest true "Share link"
// @Success 200 {object} idsResponse
// @Failure 400 {object} map[string]string
// @Router /marks/share [post]
func (h *Handler) HandleLoadShare(c *fiber.Ctx) error {
	var req shareRequest
	if err := c.BodyParser(&req); err != nil {
		return server.SendError(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	ids, err := h.service.LoadShare(c.Context(), req.Link)
	if errors.Is(err, ErrInvalidShare) {
		return server.SendError(c, fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err != nil {
		return h.fail(c, "Load share link failed", err)
	}
	return c.JSON(idsResponse{IDs: ids})
}

// HandleProgress reports how much of a source is marked.
// @Summary Source Progress
// @Tags marks
// @Produce json
// @Param source path string true "Source id"
// @Success 200 {object} Progress
// @Failure 502 {object} map[string]string
// @Router /marks/progress/{source} [get]
func (h *Handler) HandleProgress(c *fiber.Ctx) error {
	progress, err := h.service.Progress(c.Context(), c.Params("source"))
	if err != nil {
		return h.fail(c, "Progress failed", err)
	}
	return c.JSON(progress)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	return server.SendError(c, err)
}
