package query

import "time"

type DepartureBoard struct {
	PortRef string

	StartDateTime time.Time
	Count         int
}
