package api

import "github.com/gofiber/fiber/v2"

type signedURLRequest struct {
	Token    string `json:"token"`
	FileName string `json:"file_name"`
}

func (handler *Handler) GenerateSignedURL(c *fiber.Ctx) error {
	var request signedURLRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	upload, err := handler.uploads.GenerateSignedURL(c.UserContext(), request.Token, request.FileName)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"upload_url": upload.UploadURL,
		"key":        upload.Key,
	})
}
