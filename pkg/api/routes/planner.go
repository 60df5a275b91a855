package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

func PlannerRouter(router fiber.Router) {
	router.Get("/:origin/:destination", getItinerariesBetweenPorts)
}

func getItinerariesBetweenPorts(c *fiber.Ctx) error {
	originIdentifier := c.Params("origin")
	destinationIdentifier := c.Params("destination")

	dateString := c.Query("date")
	timeOfDay := c.Query("time", "00:00")
	mode := c.Query("mode", "depart-after")

	if mode != "depart-after" && mode != "arrive-before" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter mode should be depart-after or arrive-before",
		})
	}

	var date time.Time
	if dateString == "" {
		date = time.Now().In(ftdf.ServiceLocation())
	} else {
		var err error
		date, err = time.ParseInLocation(ftdf.YearMonthDayFormat, dateString, ftdf.ServiceLocation())

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": ftdf.ErrDateFormat.Error(),
			})
		}
	}

	itineraries, err := dataaggregator.Lookup[[]*ftdf.Itinerary](query.ItineraryPlan{
		DeparturePort: originIdentifier,
		ArrivalPort:   destinationIdentifier,
		Date:          date,
		TimeOfDay:     timeOfDay,
		IsArrivalMode: mode == "arrive-before",
	})

	if err != nil {
		if errors.Is(err, ftdf.ErrClockTimeFormat) || errors.Is(err, ftdf.ErrDateFormat) {
			c.SendStatus(fiber.StatusBadRequest)
		} else {
			c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	itinerariesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, itineraries)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce itineraries",
		})
	}

	return c.JSON(itinerariesReduced)
}
