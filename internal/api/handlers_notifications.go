package api

import "github.com/gofiber/fiber/v2"

type markReadRequest struct {
	NotificationIDs []uint `json:"notification_ids"`
}

type hideAllRequest struct {
	Token string `json:"token"`
}

func (handler *Handler) MarkNotificationsRead(c *fiber.Ctx) error {
	var request markReadRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	if err := handler.notifications.MarkRead(request.NotificationIDs); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) MarkAllNotificationsHidden(c *fiber.Ctx) error {
	var request hideAllRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	if err := handler.notifications.HideAll(request.Token); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
