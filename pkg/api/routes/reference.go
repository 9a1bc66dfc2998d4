package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railbooker/railbooker/pkg/irdf"
)

func ReferenceRouter(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"travelClasses":      irdf.TravelClasses,
			"quotas":             irdf.Quotas,
			"bookingAdvanceDays": irdf.BookingAdvanceDays,
		})
	})
}
