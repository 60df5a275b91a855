package itineraryplanner

import (
	"sort"
	"time"

	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/okiferry/okiferry/pkg/util"
	"golang.org/x/exp/slices"
)

// Planner computes direct and one-transfer itineraries over an immutable
// snapshot of the timetable and live status feed. It performs no I/O and
// never mutates its inputs, so one Planner can serve any number of
// concurrent searches as long as the snapshot itself is not modified
// underneath it.
type Planner struct {
	// Trips is the full static timetable, unfiltered by validity.
	Trips []*ftdf.Trip

	// Statuses maps service name to its current advisory. Missing entries
	// mean normal operation.
	Statuses map[string]*ftdf.OperationalStatus

	// Ports indexes known ports by identifier for group-port expansion.
	Ports map[string]*ftdf.Port

	// Fares may be nil; sailings then carry a zero fare.
	Fares ftdf.FareLookup
}

type candidate struct {
	trip   *ftdf.Trip
	status ftdf.StatusCode
}

// Search returns every viable itinerary between two ports on a date, ordered
// by departure time. In depart-after mode (isArrivalMode false) the anchor is
// the earliest acceptable departure; in arrive-before mode it is the latest
// acceptable arrival. A well-formed query with no matches returns an empty
// list, not an error.
func (p *Planner) Search(departure string, arrival string, date time.Time, timeOfDay string, isArrivalMode bool) ([]*ftdf.Itinerary, error) {
	anchor, err := ftdf.ParseClockTime(timeOfDay)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		return nil, ftdf.ErrDateFormat
	}

	departureRefs := ftdf.ResolvePortRefs(departure, p.Ports)
	arrivalRefs := ftdf.ResolvePortRefs(arrival, p.Ports)

	candidates := p.candidatePool(date)

	itineraries := []*ftdf.Itinerary{}

	for _, first := range candidates {
		if !slices.Contains(departureRefs, first.trip.DeparturePortRef) {
			continue
		}

		if slices.Contains(arrivalRefs, first.trip.ArrivalPortRef) {
			itineraries = append(itineraries, p.buildItinerary(date, first))
		}

		// One-transfer legs must depart strictly after the first leg
		// arrives, compared as plain times-of-day on the query date. A
		// first leg arriving past midnight therefore never connects to a
		// departure earlier on the clock - connections never roll over to
		// the next calendar date.
		// TODO: confirm with the operator whether overnight connections
		// onto the next morning's sailings should be offered.
		for _, second := range candidates {
			if second.trip.DeparturePortRef != first.trip.ArrivalPortRef {
				continue
			}

			if second.trip.DepartureTime.Compare(first.trip.ArrivalTime) <= 0 {
				continue
			}

			if !slices.Contains(arrivalRefs, second.trip.ArrivalPortRef) {
				continue
			}

			itineraries = append(itineraries, p.buildItinerary(date, first, second))
		}
	}

	util.InPlaceFilter(&itineraries, func(itinerary *ftdf.Itinerary) bool {
		if isArrivalMode {
			return itinerary.LastSegment().Trip.ArrivalTime.Compare(anchor) <= 0
		}

		return itinerary.FirstSegment().Trip.DepartureTime.Compare(anchor) >= 0
	})

	sort.SliceStable(itineraries, func(i, j int) bool {
		a := itineraries[i]
		b := itineraries[j]

		if c := a.FirstSegment().Trip.DepartureTime.Compare(b.FirstSegment().Trip.DepartureTime); c != 0 {
			return c < 0
		}

		if a.TransferCount != b.TransferCount {
			return a.TransferCount < b.TransferCount
		}

		// Equal departure time and transfer count - the preferred terminal
		// of a group port sorts first.
		return slices.Index(departureRefs, a.FirstSegment().Trip.DeparturePortRef) <
			slices.Index(departureRefs, b.FirstSegment().Trip.DeparturePortRef)
	})

	return itineraries, nil
}

// candidatePool filters the timetable down to sailings that run on the date
// and are not cancelled, then appends the feed's synthetic extra sailings.
// Cancelled sailings are dropped here so they can never appear in any
// itinerary, direct or transfer.
func (p *Planner) candidatePool(date time.Time) []candidate {
	var candidates []candidate

	for _, trip := range p.Trips {
		if !trip.IsValidOn(date) {
			continue
		}

		status := trip.EffectiveStatus(p.Statuses[trip.ServiceName])
		if status == ftdf.StatusCancelled {
			continue
		}

		candidates = append(candidates, candidate{trip: trip, status: status})
	}

	serviceNames := make([]string, 0, len(p.Statuses))
	for serviceName := range p.Statuses {
		serviceNames = append(serviceNames, serviceName)
	}
	sort.Strings(serviceNames)

	for _, serviceName := range serviceNames {
		// The snapshot may carry explicit nulls for services with no current
		// advisory.
		if p.Statuses[serviceName] == nil {
			continue
		}

		for _, extra := range p.Statuses[serviceName].ExtraTrips {
			if !extra.IsValidOn(date) {
				continue
			}

			candidates = append(candidates, candidate{trip: extra, status: ftdf.StatusExtra})
		}
	}

	return candidates
}

func (p *Planner) buildItinerary(date time.Time, legs ...candidate) *ftdf.Itinerary {
	location := ftdf.ServiceLocation()

	itinerary := &ftdf.Itinerary{
		TransferCount: len(legs) - 1,
	}

	for _, leg := range legs {
		departureTime := leg.trip.DepartureTime.AtDate(date, location)
		arrivalTime := leg.trip.ArrivalTime.AtDate(date, location)
		if leg.trip.CrossesMidnight() {
			arrivalTime = arrivalTime.Add(24 * time.Hour)
		}

		segment := &ftdf.Segment{
			Trip:            leg.trip,
			EffectiveStatus: leg.status,
			DepartureTime:   departureTime,
			ArrivalTime:     arrivalTime,
		}

		if p.Fares != nil {
			if fare, ok := p.Fares.FareFor(leg.trip.DeparturePortRef, leg.trip.ArrivalPortRef, leg.trip.ServiceName); ok {
				segment.Fare = fare
				itinerary.TotalAdultFare += fare.Adult
				itinerary.TotalChildFare += fare.Child
			}
		}

		itinerary.Segments = append(itinerary.Segments, segment)
	}

	itinerary.DepartureTime = itinerary.FirstSegment().DepartureTime
	itinerary.ArrivalTime = itinerary.LastSegment().ArrivalTime
	itinerary.Duration = ftdf.CalculateDuration(itinerary.DepartureTime, itinerary.ArrivalTime)

	return itinerary
}
