package ftdf

import "time"

// Segment is one sailing within an itinerary, with its effective status and
// base fare attached. Fare may be nil when no fare is on record.
type Segment struct {
	Trip *Trip `groups:"basic"`

	EffectiveStatus StatusCode `groups:"basic"`

	Fare *Fare `groups:"basic" json:",omitempty"`

	// Absolute timestamps anchored to the query date, for presentation and
	// sorting.
	DepartureTime time.Time `groups:"basic"`
	ArrivalTime   time.Time `groups:"basic"`
}

// Itinerary is a complete travel option of one or two segments. Consecutive
// segments always connect: a segment's arrival port is the next segment's
// departure port.
type Itinerary struct {
	Segments []*Segment `groups:"basic"`

	DepartureTime time.Time `groups:"basic"`
	ArrivalTime   time.Time `groups:"basic"`

	TransferCount int `groups:"basic"`

	// TotalFare sums the segment base fares; segments without fare data
	// contribute zero.
	TotalAdultFare int `groups:"basic"`
	TotalChildFare int `groups:"basic"`

	Duration string `groups:"basic"`
}

func (i *Itinerary) FirstSegment() *Segment {
	return i.Segments[0]
}

func (i *Itinerary) LastSegment() *Segment {
	return i.Segments[len(i.Segments)-1]
}
