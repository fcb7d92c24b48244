package records

import (
	"errors"
	"fmt"
	"strings"

	"catalog-manager/core/catalog"
	"catalog-manager/core/logger"
	"catalog-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog records.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the records routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/catalog", h.HandleSources)
	group := app.Group("/catalog/:source")
	group.Get("/records", h.HandleRecords)
	group.Get("/years", h.HandleYears)
	group.Get("/export", h.HandleExport)
	group.Get("/match", h.HandleMatch)
}

// HandleSources lists the configured sources.
// @Summary List Sources
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /catalog [get]
func (h *Handler) HandleSources(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sources": h.service.Sources()})
}

// HandleRecords returns filtered records grouped by year.
// @Summary List Records
// @Tags catalog
// @Produce json
// @Param source path string true "Source id"
// @Param start query int false "First year, inclusive"
// @Param end query int false "Last year, inclusive"
// @Param q query string false "Search over titles and cast"
// @Param actor query string false "Exact cast member"
// @Param top query int false "Records kept per year"
// @Success 200 {array} catalog.YearGroup
// @Failure 502 {object} map[string]string
// @Router /catalog/{source}/records [get]
func (h *Handler) HandleRecords(c *fiber.Ctx) error {
	q := Query{
		Filter: catalog.Filter{
			StartYear: c.QueryInt("start"),
			EndYear:   c.QueryInt("end"),
			Search:    c.Query("q"),
			Actor:     c.Query("actor"),
		},
		Top: c.QueryInt("top"),
	}
	groups, err := h.service.Groups(c.Context(), c.Params("source"), q)
	if err != nil {
		return h.fail(c, "List records failed", err)
	}
	return c.JSON(groups)
}

// HandleYears returns the distinct years of a source.
// @Summary List Years
// @Tags catalog
// @Produce json
// @Param source path string true "Source id"
// @Success 200 {array} int
// @Router /catalog/{source}/years [get]
func (h *Handler) HandleYears(c *fiber.Ctx) error {
	years, err := h.service.Years(c.Context(), c.Params("source"))
	if err != nil {
		return h.fail(c, "List years failed", err)
	}
	return c.JSON(years)
}

// HandleExport downloads marked records as a tabular file.
// @Summary Export Records
// @Tags catalog
// @Produce text/csv
// @Param source path string true "Source id"
// @Param all query bool false "Export every record instead of marked ones"
// @Success 200 {string} string
// @Router /catalog/{source}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	source := c.Params("source")
	text, count, err := h.service.Export(c.Context(), source, c.QueryBool("all"))
	if err != nil {
		return h.fail(c, "Export failed", err)
	}

	name := strings.TrimSuffix(source, ".txtpb")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_%d.csv"`, name, count))
	return c.SendString(text)
}

// HandleMatch suggests records for a free-text title.
// @Summary Match Title
// @Tags catalog
// @Produce json
// @Param source path string true "Source id"
// @Param q query string true "Title to match"
// @Success 200 {array} fuzzy.Candidate
// @Failure 400 {object} map[string]string
// @Router /catalog/{source}/match [get]
func (h *Handler) HandleMatch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return server.SendError(c, fiber.NewError(fiber.StatusBadRequest, "missing query parameter q"))
	}
	candidates, err := h.service.Match(c.Context(), c.Params("source"), query)
	if err != nil {
		return h.fail(c, "Match failed", err)
	}
	return c.JSON(candidates)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var unknown *UnknownSourceError
	if errors.As(err, &unknown) {
		return server.SendError(c, fiber.NewError(fiber.StatusNotFound, err.Error()))
	}
	logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	return server.SendError(c, err)
}
