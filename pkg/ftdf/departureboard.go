package ftdf

import (
	"time"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

type DepartureBoard struct {
	Trip *Trip `groups:"basic"`

	Time time.Time `groups:"basic"`

	Status StatusCode `groups:"basic"`

	DestinationDisplay string `groups:"basic"`
}

// GenerateDepartureBoard builds the departure board for a set of port
// identifiers on a given date, overlaying live status onto each scheduled
// sailing. Cancelled sailings stay on the board, marked Cancelled - a
// departure board tells passengers what is not running, unlike itinerary
// search which hides it.
func GenerateDepartureBoard(trips []*Trip, statuses map[string]*OperationalStatus, portRefs []string, dateTime time.Time, ports map[string]*Port) []*DepartureBoard {
	location := ServiceLocation()

	p := pool.NewWithResults[*DepartureBoard]()
	p.WithMaxGoroutines(16)

	for _, trip := range trips {
		trip := trip

		p.Go(func() *DepartureBoard {
			if !slices.Contains(portRefs, trip.DeparturePortRef) {
				return nil
			}

			if !trip.IsValidOn(dateTime) {
				return nil
			}

			departureTime := trip.DepartureTime.AtDate(dateTime, location)
			if departureTime.Before(dateTime) {
				return nil
			}

			destinationDisplay := trip.ArrivalPortRef
			if port, ok := ports[trip.ArrivalPortRef]; ok {
				destinationDisplay = port.PrimaryName
			}

			return &DepartureBoard{
				Trip:               trip,
				Time:               departureTime,
				Status:             trip.EffectiveStatus(statuses[trip.ServiceName]),
				DestinationDisplay: destinationDisplay,
			}
		})
	}

	departureBoardWithNil := p.Wait()
	var departureBoard []*DepartureBoard

	for _, record := range departureBoardWithNil {
		if record != nil {
			departureBoard = append(departureBoard, record)
		}
	}

	return departureBoard
}
