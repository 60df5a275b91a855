package databaselookup

import (
	"reflect"

	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/dataaggregator/source"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Database Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ftdf.Port{}),
		reflect.TypeOf([]*ftdf.Port{}),
		reflect.TypeOf(ftdf.Trip{}),
		reflect.TypeOf([]*ftdf.Trip{}),
		reflect.TypeOf([]*ftdf.Fare{}),
		reflect.TypeOf(ftdf.OperationalStatus{}),
		reflect.TypeOf(map[string]*ftdf.OperationalStatus{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Port:
		return s.PortQuery(q.(query.Port))
	case query.PortsList:
		return s.PortsListQuery(q.(query.PortsList))
	case query.Trip:
		return s.TripQuery(q.(query.Trip))
	case query.TripsSnapshot:
		return s.TripsSnapshotQuery(q.(query.TripsSnapshot))
	case query.FaresSnapshot:
		return s.FaresSnapshotQuery(q.(query.FaresSnapshot))
	case query.OperationalStatus:
		return s.OperationalStatusQuery(q.(query.OperationalStatus))
	case query.OperationalStatusSnapshot:
		return s.OperationalStatusSnapshotQuery(q.(query.OperationalStatusSnapshot))
	default:
		return nil, source.UnsupportedSourceError
	}
}
