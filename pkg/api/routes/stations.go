package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/irdf"
)

func StationsRouter(router fiber.Router, snapshot *catalog.Catalog) {
	router.Get("/", func(c *fiber.Ctx) error {
		stations := snapshot.SearchStations(c.Query("search"))

		// Keep an empty result a JSON array, not null.
		if stations == nil {
			stations = []irdf.StationInfo{}
		}

		return c.JSON(stations)
	})
}
