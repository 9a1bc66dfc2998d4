package routes

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/pnr"
	"github.com/railbooker/railbooker/pkg/search"
)

var pnrPattern = regexp.MustCompile(`^\d{10}$`)

func PNRRouter(router fiber.Router, snapshot *catalog.Catalog) {
	router.Get("/:pnr", func(c *fiber.Ctx) error {
		pnrNumber := c.Params("pnr")

		if !pnrPattern.MatchString(pnrNumber) {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "PNR should be a 10 digit number",
			})
		}

		status := pnr.Lookup(pnrNumber, snapshot.Passengers(), snapshot.Trains(), snapshot.Stations())

		if status == nil {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "PNR not found",
			})
		}

		return c.JSON(status)
	})
}

func BookingsRouter(router fiber.Router, snapshot *catalog.Catalog) {
	router.Get("/", func(c *fiber.Ctx) error {
		bookings := pnr.AllBookings(snapshot.Passengers(), snapshot.Trains(), snapshot.Stations())

		if sortKey := c.Query("sort"); sortKey != "" {
			bookings = search.SortBookings(bookings, search.BookingSortKey(sortKey))
		}

		return c.JSON(fiber.Map{
			"bookings": bookings,
			"count":    len(bookings),
		})
	})
}
