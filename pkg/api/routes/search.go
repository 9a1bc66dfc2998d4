package routes

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/search"
)

func SearchRouter(router fiber.Router, snapshot *catalog.Catalog) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getSearch(c, snapshot)
	})
}

func getSearch(c *fiber.Ctx, snapshot *catalog.Catalog) error {
	criteria, err := criteriaFromQuery(c, snapshot, false)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cacheKey := fmt.Sprintf("search:%s", c.Request().URI().QueryString())
	if cached, found := cachedSearchResponse(cacheKey); found {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	results := search.Search(criteria, snapshot.Trains())

	if sortKey := c.Query("sort"); sortKey != "" {
		results = search.SortTrains(results, search.SortKey(sortKey))
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = append(groups, "detailed")
	}

	resultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, results)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Trains",
		})
	}

	response, err := json.Marshal(fiber.Map{
		"trains": resultsReduced,
		"count":  len(results),
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not marshal response",
		})
	}

	storeSearchResponse(cacheKey, string(response))

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(response)
}
