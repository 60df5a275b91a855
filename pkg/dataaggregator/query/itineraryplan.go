package query

import "time"

type ItineraryPlan struct {
	DeparturePort string
	ArrivalPort   string

	Date time.Time

	// TimeOfDay anchors the search: earliest departure in depart-after
	// mode, latest arrival in arrive-before mode.
	TimeOfDay     string
	IsArrivalMode bool
}
