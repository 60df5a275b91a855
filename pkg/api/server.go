package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/okiferry/okiferry/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PortsRouter(group.Group("/ports"))
	routes.TripsRouter(group.Group("/trips"))
	routes.PlannerRouter(group.Group("/planner"))
	routes.StatusRouter(group.Group("/status"))

	return webApp.Listen(listen)
}
