package departureboard

import (
	"reflect"

	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/dataaggregator/source"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Local Departure Board Generator"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ftdf.DepartureBoard{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.DepartureBoard:
		return s.DepartureBoardQuery(q.(query.DepartureBoard))
	default:
		return nil, source.UnsupportedSourceError
	}
}
