package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

func TripsRouter(router fiber.Router) {
	router.Get("/:identifier", getTrip)
}

func getTrip(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	trip, err := dataaggregator.Lookup[*ftdf.Trip](query.Trip{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Trip matching Trip Identifier",
		})
	}

	tripReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, trip)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce trip",
		})
	}

	return c.JSON(tripReduced)
}
