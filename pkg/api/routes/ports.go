package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/ftdf"

	iso8601 "github.com/senseyeio/duration"
)

func PortsRouter(router fiber.Router) {
	router.Get("/", listPorts)
	router.Get("/:identifier", getPort)
	router.Get("/:identifier/departures", getPortDepartures)
}

func listPorts(c *fiber.Ctx) error {
	ports, err := dataaggregator.Lookup[[]*ftdf.Port](query.PortsList{})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	portsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, ports)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce ports",
		})
	}

	return c.JSON(portsReduced)
}

func getPort(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	port, err := dataaggregator.Lookup[*ftdf.Port](query.Port{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Port matching Port Identifier",
		})
	}

	return c.JSON(port)
}

func getPortDepartures(c *fiber.Ctx) error {
	portIdentifier := c.Params("identifier")
	count, err := strconv.Atoi(c.Query("count", "25"))
	startDateTimeString := c.Query("datetime")

	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be an integer",
		})
	}

	var startDateTime time.Time
	if startDateTimeString == "" {
		startDateTime = time.Now().In(ftdf.ServiceLocation())
	} else {
		startDateTime, err = time.Parse(time.RFC3339, startDateTimeString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter datetime should be an RFC3339/ISO8601 datetime",
			})
		}
	}

	// Shift the window forward a whole day when the board is requested for
	// after the last sailing of the evening.
	if dayShift := c.Query("dayshift"); dayShift != "" {
		if shiftDuration, err := iso8601.ParseISO8601(dayShift); err == nil {
			startDateTime = shiftDuration.Shift(startDateTime)
		}
	}

	departures, err := dataaggregator.Lookup[[]*ftdf.DepartureBoard](query.DepartureBoard{
		PortRef:       portIdentifier,
		StartDateTime: startDateTime,
		Count:         count,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	departuresReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, departures)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce departures",
		})
	}

	return c.JSON(departuresReduced)
}
