package importer

import (
	"errors"
	"slices"
	"strings"

	"catalog-manager/core/logger"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/server"
	"catalog-manager/core/tabular"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler runs import operations over HTTP. Each request drives one operation
// from Idle to its final state, answering prompts from the request itself.
type Handler struct {
	coord   *reconcile.Coordinator
	sources []string
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. An empty sources list accepts any source.
func NewHandler(coord *reconcile.Coordinator, sources []string, logger *zap.Logger) *Handler {
	return &Handler{coord: coord, sources: sources, logger: logger}
}

// RegisterRoutes registers the import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/imports/:source")
	group.Post("/csv/preview", h.HandleCSVPreview)
	group.Post("/csv/apply", h.HandleCSVApply)
	group.Post("/text/preview", h.HandleTextPreview)
	group.Post("/text/apply", h.HandleTextApply)
}

// TextRequest is the body of free-text import requests.
type TextRequest struct {
	// Text holds one title per line, or comma separated titles.
	Text string `json:"text"`
	// Selections maps each query to the chosen record id; an empty id ignores the query.
	Selections map[string]string `json:"selections"`
	// Strategy is merge or overwrite.
	Strategy string `json:"strategy"`
}

// OperationResponse reports where an operation stopped.
type OperationResponse struct {
	OperationID string             `json:"operation_id"`
	State       reconcile.State    `json:"state"`
	Summary     string             `json:"summary,omitempty"`
	Preview     *reconcile.Preview `json:"preview,omitempty"`
	Outcome     *reconcile.Outcome `json:"outcome,omitempty"`
	Error       string             `json:"error,omitempty"`
	// Validation holds the true row counts and at most the configured number of row errors.
	Validation *tabular.ValidationReport `json:"validation,omitempty"`
}

func respond(op *reconcile.Operation) OperationResponse {
	resp := OperationResponse{
		OperationID: op.ID(),
		State:       op.State(),
		Preview:     op.Preview(),
		Outcome:     op.Outcome(),
	}
	if resp.Preview != nil {
		resp.Summary = resp.Preview.Summary()
	}
	if v := op.Validation(); v != nil {
		resp.Validation = v.Report()
	}
	if err := op.Err(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// HandleCSVPreview validates an import file without applying it.
// @Summary Preview Tabular Import
// @Tags imports
// @Accept text/csv
// @Produce json
// @Param source path string true "Source id"
// @Success 200 {object} OperationResponse
// @Failure 400 {object} OperationResponse
// @Failure 502 {object} OperationResponse
// @Router /imports/{source}/csv/preview [post]
func (h *Handler) HandleCSVPreview(c *fiber.Ctx) error {
	op, ok := h.begin(c)
	if !ok {
		return nil
	}
	if err := op.ValidateTabular(c.Context(), string(c.Body())); err != nil {
		return h.rejected(c, op, err)
	}
	if err := op.Cancel(); err != nil {
		return h.rejected(c, op, err)
	}
	return c.JSON(respond(op))
}

// HandleCSVApply validates an import file and applies it.
// @Summary Apply Tabular Import
// @Tags imports
// @Accept text/csv
// @Produce json
// @Param source path string true "Source id"
// @Param strategy query string false "merge (default) or overwrite"
// @Success 200 {object} OperationResponse
// @Failure 400 {object} OperationResponse
// @Router /imports/{source}/csv/apply [post]
func (h *Handler) HandleCSVApply(c *fiber.Ctx) error {
	strategy, err := reconcile.ParseStrategy(c.Query("strategy"))
	if err != nil {
		return server.SendError(c, fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	op, ok := h.begin(c)
	if !ok {
		return nil
	}
	if err := op.ValidateTabular(c.Context(), string(c.Body())); err != nil {
		return h.rejected(c, op, err)
	}
	prompt := reconcile.FixedPrompt{Confirm: true, Strategy: strategy}
	if _, err := op.Decide(c.Context(), prompt); err != nil {
		return h.rejected(c, op, err)
	}
	return c.JSON(respond(op))
}

// HandleTextPreview suggests the best record for each title without applying anything.
// @Summary Preview Free-Text Import
// @Tags imports
// @Accept json
// @Produce json
// @Param source path string true "Source id"
// @Param body body TextRequest true "Titles"
// @Success 200 {object} OperationResponse
// @Router /imports/{source}/text/preview [post]
func (h *Handler) HandleTextPreview(c *fiber.Ctx) error {
	req, ok := h.parseText(c)
	if !ok {
		return nil
	}
	op, ok := h.begin(c)
	if !ok {
		return nil
	}
	prompt := reconcile.FixedPrompt{Selections: req.Selections, AcceptBest: true}
	if err := op.MatchQueries(c.Context(), tabular.ParseQueries(req.Text), prompt); err != nil {
		return h.rejected(c, op, err)
	}
	if err := op.Cancel(); err != nil {
		return h.rejected(c, op, err)
	}
	return c.JSON(respond(op))
}

// HandleTextApply applies the explicitly selected records for each title.
// Titles without a selection are ignored; suggestions are never applied on their own.
// @Summary Apply Free-Text Import
// @Tags imports
// @Accept json
// @Produce json
// @Param source path string true "Source id"
// @Param body body TextRequest true "Titles and selections"
// @Success 200 {object} OperationResponse
// @Failure 400 {object} OperationResponse
// @Router /imports/{source}/text/apply [post]
func (h *Handler) HandleTextApply(c *fiber.Ctx) error {
	req, ok := h.parseText(c)
	if !ok {
		return nil
	}
	strategy, err := reconcile.ParseStrategy(req.Strategy)
	if err != nil {
		return server.SendError(c, fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	op, ok := h.begin(c)
	if !ok {
		return nil
	}
	prompt := reconcile.FixedPrompt{Selections: req.Selections, Confirm: true, Strategy: strategy}
	if err := op.MatchQueries(c.Context(), tabular.ParseQueries(req.Text), prompt); err != nil {
		return h.rejected(c, op, err)
	}
	if _, err := op.Decide(c.Context(), prompt); err != nil {
		return h.rejected(c, op, err)
	}
	return c.JSON(respond(op))
}

func (h *Handler) begin(c *fiber.Ctx) (*reconcile.Operation, bool) {
	source := c.Params("source")
	if len(h.sources) > 0 && !slices.Contains(h.sources, source) {
		_ = server.SendError(c, fiber.NewError(fiber.StatusNotFound, "unknown source "+source))
		return nil, false
	}
	return h.coord.Begin(source), true
}

func (h *Handler) parseText(c *fiber.Ctx) (TextRequest, bool) {
	var req TextRequest
	if err := c.BodyParser(&req); err != nil {
		_ = server.SendError(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
		return req, false
	}
	if strings.TrimSpace(req.Text) == "" {
		_ = server.SendError(c, fiber.NewError(fiber.StatusBadRequest, "text is required"))
		return req, false
	}
	return req, true
}

func (h *Handler) rejected(c *fiber.Ctx, op *reconcile.Operation, err error) error {
	l := logger.WithRayID(h.logger, c).With(zap.String("operation_id", op.ID()))
	if reconcile.IsRejection(err) {
		l.Info("Import rejected", zap.Error(err))
	} else if !errors.Is(err, reconcile.ErrInvalidTransition) {
		l.Error("Import failed", zap.Error(err))
	}

	resp := respond(op)
	resp.Error = err.Error()
	return c.Status(server.StatusFor(err)).JSON(resp)
}
