package api

import (
	"github.com/fertivia/clinic/internal/models"
	"github.com/gofiber/fiber/v2"
)

type dassTestRequest struct {
	Token   string              `json:"token"`
	Answers []models.TestAnswer `json:"answers"`
}

func (handler *Handler) DASSTestResults(c *fiber.Ctx) error {
	var request dassTestRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	result, testID, err := handler.tests.SubmitDASS(request.Token, request.Answers)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
		"test_id": testID,
	})
}
