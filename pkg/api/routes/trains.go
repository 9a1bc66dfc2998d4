package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railbooker/railbooker/pkg/catalog"
)

func TrainsRouter(router fiber.Router, snapshot *catalog.Catalog) {
	router.Get("/:number", func(c *fiber.Ctx) error {
		train := snapshot.TrainByNumber(c.Params("number"))

		if train == nil {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Train not found",
			})
		}

		trainReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic", "detailed"},
		}, train)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Could not reduce Train",
			})
		}

		return c.JSON(trainReduced)
	})
}
