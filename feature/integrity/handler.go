package integrity

import (
	"catalog-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/sources", h.HandleSourcesCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs all checks.
// @Summary Run All Integrity Checks
// @Description Checks the storage bucket, loads every catalog source and verifies the marks schema.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.Run(c.Context())
	if !report.Healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the storage bucket.
// @Summary Check Storage
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.StorageReport
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckStorage(c.Context()))
}

// HandleSourcesCheck loads every catalog source.
// @Summary Check Sources
// @Tags integrity
// @Produce json
// @Success 200 {array} checks.SourceReport
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	reports := h.service.CheckSources(c.Context())
	for _, r := range reports {
		if r.Error != "" {
			logger.WithRayID(h.service.logger, c).Warn("Source failed to load",
				zap.String("source", r.Source),
				zap.String("error", r.Error),
			)
		}
	}
	return c.JSON(reports)
}

// HandleSchemaCheck verifies the marks schema.
// @Summary Check Marks Schema
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckSchema())
}
