package server_test

import (
	"errors"
	"fmt"
	"testing"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/server"
	"catalog-manager/core/tabular"
	"catalog-manager/core/textproto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":9090", server.Config{Port: "9090"}.Address())
	assert.Equal(t, ":8080", server.Config{}.Address())
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 1024, server.Config{BodyLimitKB: 1}.BodyLimit())
	assert.Equal(t, 4096*1024, server.Config{}.BodyLimit())
}

func TestConfig_FiberConfig(t *testing.T) {
	cfg := server.Config{BodyLimitKB: 2}.FiberConfig()
	assert.True(t, cfg.Immutable)
	assert.True(t, cfg.DisableStartupMessage)
	assert.Equal(t, 2048, cfg.BodyLimit)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Source", fmt.Errorf("wrap: %w", &catalog.SourceError{Source: "x", Err: errors.New("gone")}), fiber.StatusBadGateway},
		{"Catalog Via Coordinator", fmt.Errorf("%w: %w", reconcile.ErrCatalogUnavailable, catalog.ErrSourceUnavailable), fiber.StatusBadGateway},
		{"Parse", fmt.Errorf("load: %w", &textproto.ParseError{Kind: textproto.KindUnbalancedBraces, Line: 3}), fiber.StatusUnprocessableEntity},
		{"Validation", &tabular.ValidationError{Kind: tabular.KindHeaderMismatch}, fiber.StatusBadRequest},
		{"Nothing Selected", reconcile.ErrNothingSelected, fiber.StatusBadRequest},
		{"Transition", fmt.Errorf("%w: idle -> applied", reconcile.ErrInvalidTransition), fiber.StatusConflict},
		{"Fiber", fiber.NewError(fiber.StatusNotFound, "unknown source"), fiber.StatusNotFound},
		{"Other", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.StatusFor(tt.err))
		})
	}
}
