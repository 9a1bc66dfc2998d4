package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railbooker/railbooker/pkg/api/routes"
	"github.com/railbooker/railbooker/pkg/catalog"
)

func SetupServer(listen string, c *catalog.Catalog) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), c)
	routes.TrainsRouter(group.Group("/trains"), c)
	routes.SearchRouter(group.Group("/search"), c)
	routes.ConnectionsRouter(group.Group("/connections"), c)
	routes.PNRRouter(group.Group("/pnr"), c)
	routes.BookingsRouter(group.Group("/bookings"), c)
	routes.ReferenceRouter(group.Group("/reference"))

	return webApp.Listen(listen)
}
