package departureboard

import (
	"sort"

	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

func (s Source) DepartureBoardQuery(q query.DepartureBoard) ([]*ftdf.DepartureBoard, error) {
	port, err := dataaggregator.Lookup[*ftdf.Port](query.Port{
		PrimaryIdentifier: q.PortRef,
	})
	if err != nil {
		return nil, err
	}

	trips, err := dataaggregator.Lookup[[]*ftdf.Trip](query.TripsSnapshot{})
	if err != nil {
		return nil, err
	}

	statuses, err := dataaggregator.Lookup[map[string]*ftdf.OperationalStatus](query.OperationalStatusSnapshot{})
	if err != nil {
		statuses = map[string]*ftdf.OperationalStatus{}
	}

	ports, err := dataaggregator.Lookup[[]*ftdf.Port](query.PortsList{})
	if err != nil {
		return nil, err
	}

	portIndex := map[string]*ftdf.Port{}
	for _, p := range ports {
		portIndex[p.PrimaryIdentifier] = p
	}

	departureBoard := ftdf.GenerateDepartureBoard(trips, statuses, port.ResolvedRefs(), q.StartDateTime, portIndex)

	sort.Slice(departureBoard, func(i, j int) bool {
		return departureBoard[i].Time.Before(departureBoard[j].Time)
	})

	if q.Count > 0 && len(departureBoard) > q.Count {
		departureBoard = departureBoard[:q.Count]
	}

	return departureBoard, nil
}
