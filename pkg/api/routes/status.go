package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

func StatusRouter(router fiber.Router) {
	router.Get("/", listOperationalStatus)
	router.Get("/:service", getOperationalStatus)
}

func listOperationalStatus(c *fiber.Ctx) error {
	statuses, err := dataaggregator.Lookup[map[string]*ftdf.OperationalStatus](query.OperationalStatusSnapshot{})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	statusesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, statuses)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce statuses",
		})
	}

	return c.JSON(statusesReduced)
}

func getOperationalStatus(c *fiber.Ctx) error {
	serviceName := c.Params("service")

	status, err := dataaggregator.Lookup[*ftdf.OperationalStatus](query.OperationalStatus{
		ServiceName: serviceName,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Operational Status matching service",
		})
	}

	return c.JSON(status)
}
