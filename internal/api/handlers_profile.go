package api

import (
	"github.com/fertivia/clinic/internal/services"
	"github.com/gofiber/fiber/v2"
)

type editClientRequest struct {
	Token string `json:"token"`
	services.ProfileUpdate
}

func (handler *Handler) UserData(c *fiber.Ctx) error {
	data, err := handler.profile.GetUserData(c.Query("token"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"client":               clientSnapshot(data.Client),
		"unread_notifications": data.UnreadNotifications,
	})
}

func (handler *Handler) EditClient(c *fiber.Ctx) error {
	var request editClientRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	if err := handler.profile.EditClient(request.Token, request.ProfileUpdate); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
