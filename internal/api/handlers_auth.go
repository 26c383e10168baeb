package api

import "github.com/gofiber/fiber/v2"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var request loginRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	session, err := handler.auth.Login(request.Email, request.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"token":      session.Token,
		"client_id":  session.ClientID,
		"first_name": session.FirstName,
		"last_name":  session.LastName,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	var request logoutRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	if err := handler.auth.Logout(request.Token); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
