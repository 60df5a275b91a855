package ftdf

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusCode enumerates the operational state of a sailing. The integer
// values match the codes baked into timetable datasets (0 normal .. 4 extra).
type StatusCode int

const (
	StatusNormal StatusCode = iota
	StatusCancelled
	StatusPartialCancel
	StatusChanged
	StatusExtra
)

func (s StatusCode) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusCancelled:
		return "Cancelled"
	case StatusPartialCancel:
		return "PartialCancel"
	case StatusChanged:
		return "Changed"
	case StatusExtra:
		return "Extra"
	default:
		return fmt.Sprintf("StatusCode(%d)", int(s))
	}
}

// ExtraTripIDFormat is the reserved identifier namespace for synthetic extra
// sailings: service name then a per-refresh sequence number. Static timetable
// identifiers never use this prefix, so the two can never collide.
const ExtraTripIDFormat = "okiferry-trip-extra-%s-%d"

func ExtraTripIdentifier(serviceName string, sequence int) string {
	return fmt.Sprintf(ExtraTripIDFormat, serviceName, sequence)
}

// OperationalStatus is the live advisory for one service, supplied by the
// status feed. It is merged onto scheduled trips at query time rather than
// baked into them, so one timetable load stays valid across many status
// refreshes.
type OperationalStatus struct {
	ServiceName string `groups:"basic" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" bson:",omitempty"`

	DataSource *DataSourceReference `groups:"internal" bson:",omitempty"`

	HasAlert   bool       `groups:"basic"`
	StatusCode StatusCode `groups:"basic"`

	// EffectiveFromTime bounds a partial cancellation or change: sailings
	// departing at or after this time are affected.
	EffectiveFromTime ClockTime `groups:"basic"`

	Title string `groups:"basic" json:",omitempty" bson:",omitempty"`
	Text  string `groups:"basic" json:",omitempty" bson:",omitempty"`

	// ExtraTrips are ad-hoc sailings absent from the static timetable,
	// synthesized fresh by the status feed on every refresh.
	ExtraTrips []*Trip `groups:"basic" json:",omitempty" bson:",omitempty"`
}

func (s OperationalStatus) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

// EffectiveStatus overlays a live advisory onto the trip's scheduled status.
//
// A PartialCancel advisory cancels every sailing departing at or after
// EffectiveFromTime. The boundary is inclusive - a sailing departing exactly
// at the advisory time counts as cancelled. That is the operator's documented
// rule for "cancelled from 12:30 onward" notices.
func (t *Trip) EffectiveStatus(status *OperationalStatus) StatusCode {
	if t.Synthetic {
		return StatusExtra
	}

	if status == nil || !status.HasAlert {
		return t.BaseStatus
	}

	switch status.StatusCode {
	case StatusCancelled:
		return StatusCancelled
	case StatusPartialCancel:
		if t.DepartureTime.Compare(status.EffectiveFromTime) >= 0 {
			return StatusCancelled
		}
		return StatusNormal
	case StatusChanged:
		// Informational only - changed sailings still run and stay in
		// search results.
		return StatusChanged
	case StatusExtra:
		// Extra advisories only describe synthetic sailings, handled above.
		return t.BaseStatus
	default:
		return t.BaseStatus
	}
}
