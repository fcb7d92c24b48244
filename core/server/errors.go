package server

import (
	"errors"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/tabular"
	"catalog-manager/core/textproto"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error to the HTTP status reported to clients.
func StatusFor(err error) int {
	var parseErr *textproto.ParseError
	var validationErr *tabular.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, catalog.ErrSourceUnavailable):
		return fiber.StatusBadGateway
	case errors.As(err, &parseErr):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &validationErr), errors.Is(err, reconcile.ErrNothingSelected):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// SendError writes err as {"error": "..."} with the mapped status.
func SendError(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
