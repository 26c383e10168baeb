package api

import (
	"errors"

	"github.com/fertivia/clinic/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Error messages as the client app and CRM frontend match on them.
const (
	messageInvalidCredentials = "Invalid credentials"
	messageInvalidToken       = "Invalid token"
	messageClientNotFound     = "Client not found"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// auth failures to 401, missing entities to 404, everything else to 500
// with the underlying message (the upload path relies on that).
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, messageInvalidCredentials)
	case errors.Is(err, services.ErrInvalidToken):
		return apiError(c, fiber.StatusUnauthorized, messageInvalidToken)
	case errors.Is(err, services.ErrClientNotFound):
		return apiError(c, fiber.StatusNotFound, messageClientNotFound)
	default:
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
}
