package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/projecthub/projecthub/internal/auth"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders errors as JSON.
// Validation and authorization failures answer 422, missing rows 404, fiber errors keep their
// status and anything else is logged and answers 500.
func ErrorHandler(c fiber.Ctx, err error) error {
	var (
		fiberErr *fiber.Error
		status   int
		message  = err.Error()
	)

	switch {
	case auth.IsValidation(err), auth.IsAuthorization(err):
		status = fiber.StatusUnprocessableEntity
	case auth.IsNotFound(err):
		status = fiber.StatusNotFound
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		message = fiberErr.Message
	default:
		status = fiber.StatusInternalServerError
		message = "internal server error"

		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
