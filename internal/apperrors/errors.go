package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors for the lifecycle and request paths. Handlers map these
// to HTTP statuses at the boundary; nothing below the handler layer knows
// about status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrInternal     = errors.New("internal error")
)

func NotFound(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

func InvalidState(detail string) error {
	return fmt.Errorf("%s: %w", detail, ErrInvalidState)
}

// StatusCode resolves an error to the HTTP status the boundary reports.
// Unknown errors are treated as internal.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidState):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
