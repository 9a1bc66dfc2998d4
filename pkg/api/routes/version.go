package routes

import (
	"github.com/gofiber/fiber/v2"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": "1.0.0",
	})
}
