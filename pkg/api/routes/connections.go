package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/search"
)

// ConnectionsRouter serves the advanced search view: direct trains plus
// synthesised two-leg connections through junction stations.
func ConnectionsRouter(router fiber.Router, snapshot *catalog.Catalog) {
	router.Get("/", func(c *fiber.Ctx) error {
		criteria, err := criteriaFromQuery(c, snapshot, true)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		directTrains := search.Search(criteria, snapshot.Trains())
		partialJourneys := search.FindPartialJourneys(criteria, snapshot.Trains())

		marshalOptions := &sheriff.Options{
			Groups: []string{"basic"},
		}

		trainsReduced, err := sheriff.Marshal(marshalOptions, directTrains)
		if err == nil {
			var journeysReduced interface{}
			journeysReduced, err = sheriff.Marshal(marshalOptions, partialJourneys)

			if err == nil {
				return c.JSON(fiber.Map{
					"trains":          trainsReduced,
					"partialJourneys": journeysReduced,
				})
			}
		}

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce connections",
		})
	})
}
