package ftdf

import "time"

// Fare is the base adult/child fare for one port pair on one service, in yen.
// Discount rules live with the operator's booking systems, not here.
type Fare struct {
	DeparturePortRef string `groups:"basic" bson:",omitempty"`
	ArrivalPortRef   string `groups:"basic" bson:",omitempty"`
	ServiceName      string `groups:"basic" bson:",omitempty"`

	Adult int `groups:"basic"`
	Child int `groups:"basic"`

	ModificationDateTime time.Time            `groups:"detailed" bson:",omitempty"`
	DataSource           *DataSourceReference `groups:"internal" bson:",omitempty"`
}

// FareLookup resolves the base fare for a sailing. A nil, false return means
// no fare is on record - callers degrade to a zero fare rather than failing
// the search.
type FareLookup interface {
	FareFor(departurePortRef string, arrivalPortRef string, serviceName string) (*Fare, bool)
}

// FareTable is an in-memory FareLookup over a fixed fare list.
type FareTable struct {
	fares map[fareKey]*Fare
}

type fareKey struct {
	departurePortRef string
	arrivalPortRef   string
	serviceName      string
}

func NewFareTable(fares []*Fare) *FareTable {
	table := &FareTable{
		fares: map[fareKey]*Fare{},
	}

	for _, fare := range fares {
		table.fares[fareKey{fare.DeparturePortRef, fare.ArrivalPortRef, fare.ServiceName}] = fare
	}

	return table
}

func (t *FareTable) FareFor(departurePortRef string, arrivalPortRef string, serviceName string) (*Fare, bool) {
	fare, ok := t.fares[fareKey{departurePortRef, arrivalPortRef, serviceName}]
	return fare, ok
}
