package ftdf

import (
	"encoding/json"
	"time"

	"golang.org/x/exp/slices"
)

const YearMonthDayFormat = "2006-01-02"

// ServiceTimezone is the fixed local timezone every timetable time-of-day is
// expressed in.
const ServiceTimezone = "Asia/Tokyo"

var serviceLocation *time.Location

func init() {
	var err error
	serviceLocation, err = time.LoadLocation(ServiceTimezone)
	if err != nil {
		serviceLocation = time.FixedZone("JST", 9*60*60)
	}
}

func ServiceLocation() *time.Location {
	return serviceLocation
}

// Trip is a single scheduled sailing. Trips are immutable once loaded from a
// timetable dataset - live deviations are overlaid at query time via
// OperationalStatus, never written back into the Trip.
type Trip struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" bson:",omitempty"`

	DataSource *DataSourceReference `groups:"internal" bson:",omitempty"`

	// ServiceName identifies the vessel/route operator; it selects the
	// status feed and the fare category for this sailing.
	ServiceName string `groups:"basic" bson:",omitempty"`

	DeparturePortRef string `groups:"basic" bson:",omitempty"`
	ArrivalPortRef   string `groups:"basic" bson:",omitempty"`

	// Arrival earlier than departure on the clock means a next-day arrival.
	DepartureTime ClockTime `groups:"basic"`
	ArrivalTime   ClockTime `groups:"basic"`

	// ValidFrom/ValidUntil delimit the timetable season this sailing runs
	// in, inclusive on both ends. A nil ValidUntil is open-ended.
	ValidFrom  time.Time  `groups:"internal" bson:",omitempty"`
	ValidUntil *time.Time `groups:"internal" json:",omitempty" bson:",omitempty"`

	// DaysOfWeek restricts the sailing within its validity window when set.
	DaysOfWeek []time.Weekday `groups:"internal" json:",omitempty" bson:",omitempty"`

	// NextTripRef links a continuing sailing on the same vessel.
	NextTripRef string `groups:"detailed" json:",omitempty" bson:",omitempty"`

	BaseStatus StatusCode `groups:"basic"`

	// Synthetic marks ad-hoc extra sailings built from the live status feed.
	// They are rebuilt on every feed refresh and never stored as timetable
	// entries.
	Synthetic bool `groups:"basic" json:",omitempty" bson:"-"`
}

// IsValidOn reports whether the trip runs on the given calendar date.
// It fails closed for dates before ValidFrom; an absent ValidUntil keeps the
// trip valid indefinitely. Day-of-week restrictions are AND-ed in and never
// override the date range.
func (t *Trip) IsValidOn(date time.Time) bool {
	day := TruncateToDate(date)

	if day.Before(TruncateToDate(t.ValidFrom)) {
		return false
	}

	if t.ValidUntil != nil && day.After(TruncateToDate(*t.ValidUntil)) {
		return false
	}

	if len(t.DaysOfWeek) > 0 && !slices.Contains(t.DaysOfWeek, day.Weekday()) {
		return false
	}

	return true
}

// CrossesMidnight reports whether the sailing arrives on the day after it
// departs.
func (t *Trip) CrossesMidnight() bool {
	return t.ArrivalTime.Compare(t.DepartureTime) < 0
}

// DurationMinutes is the sailing time in minutes, accounting for overnight
// crossings.
func (t *Trip) DurationMinutes() int {
	return t.DepartureTime.DurationTo(t.ArrivalTime)
}

func (t Trip) MarshalBinary() ([]byte, error) {
	return json.Marshal(t)
}

// TruncateToDate strips the time-of-day component, keeping validity checks in
// calendar-date space.
func TruncateToDate(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
