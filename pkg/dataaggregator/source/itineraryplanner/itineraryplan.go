package itineraryplanner

import (
	"context"
	"encoding/json"

	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/okiferry/okiferry/pkg/statusfeed"
	"github.com/rs/zerolog/log"
)

// ItineraryPlanQuery assembles an effectively-immutable snapshot of the
// timetable, status feed, ports and fares, then runs the pure planner over
// it. The snapshot is rebuilt per query; the status feed refreshes on its own
// cadence and is only ever read here.
func (s Source) ItineraryPlanQuery(q query.ItineraryPlan) ([]*ftdf.Itinerary, error) {
	trips, err := dataaggregator.Lookup[[]*ftdf.Trip](query.TripsSnapshot{})
	if err != nil {
		return nil, err
	}

	ports, err := dataaggregator.Lookup[[]*ftdf.Port](query.PortsList{})
	if err != nil {
		return nil, err
	}

	portIndex := map[string]*ftdf.Port{}
	for _, port := range ports {
		portIndex[port.PrimaryIdentifier] = port
	}

	fares, err := dataaggregator.Lookup[[]*ftdf.Fare](query.FaresSnapshot{})
	if err != nil {
		// Fares are a degraded-but-functional concern; the search still
		// runs with zero fares.
		log.Error().Err(err).Msg("Failed to load fares snapshot")
		fares = nil
	}

	planner := &Planner{
		Trips:    trips,
		Statuses: s.statusSnapshot(),
		Ports:    portIndex,
		Fares:    ftdf.NewFareTable(fares),
	}

	return planner.Search(q.DeparturePort, q.ArrivalPort, q.Date, q.TimeOfDay, q.IsArrivalMode)
}

// statusSnapshot prefers the status feed's redis snapshot and falls back to
// the database copy. An empty snapshot just means every service runs to
// schedule.
func (s Source) statusSnapshot() map[string]*ftdf.OperationalStatus {
	if s.statusSnapshotStore != nil {
		snapshotJSON, err := s.statusSnapshotStore.Get(context.Background(), statusfeed.SnapshotCacheKey)

		if err == nil && snapshotJSON != "" {
			var statuses map[string]*ftdf.OperationalStatus
			if err := json.Unmarshal([]byte(snapshotJSON), &statuses); err == nil {
				return statuses
			} else {
				log.Error().Err(err).Msg("Failed to decode status feed snapshot")
			}
		}
	}

	statuses, err := dataaggregator.Lookup[map[string]*ftdf.OperationalStatus](query.OperationalStatusSnapshot{})
	if err != nil {
		log.Debug().Err(err).Msg("No operational status snapshot available")
		return map[string]*ftdf.OperationalStatus{}
	}

	return statuses
}
