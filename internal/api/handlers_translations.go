package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Translations(c *fiber.Ctx) error {
	catalog, err := handler.translations.Catalog()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"eng": catalog.English,
		"sr":  catalog.Serbian,
		"ru":  catalog.Russian,
		"zh":  catalog.Chinese,
	})
}
