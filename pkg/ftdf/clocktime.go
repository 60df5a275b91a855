package ftdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrClockTimeFormat is returned whenever a timetable time-of-day string
// cannot be parsed. Malformed input is never coerced into a best guess.
var ErrClockTimeFormat = errors.New("clock time must be a HH:MM string")

// ErrDateFormat is returned for malformed or missing calendar dates.
var ErrDateFormat = errors.New("date must be a YYYY-MM-DD string")

const minutesPerDay = 24 * 60

// ClockTime is a time-of-day expressed as minutes since midnight.
// Timetable times have no calendar date attached - a sailing departing at
// 09:00 departs at 09:00 on whichever date it runs.
type ClockTime int

func ParseClockTime(value string) (ClockTime, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, ErrClockTimeFormat
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrClockTimeFormat
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrClockTimeFormat
	}

	return ClockTime(hours*60 + minutes), nil
}

func (c ClockTime) Hour() int {
	return int(c) / 60
}

func (c ClockTime) Minute() int {
	return int(c) % 60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Compare orders two clock times by minute-of-day. There is no midnight
// unwrapping here - callers decide what crossing midnight means.
func (c ClockTime) Compare(other ClockTime) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

// DurationTo returns the number of minutes from c to other, treating a
// negative difference as an overnight crossing. The result is always in
// [0, 1439].
func (c ClockTime) DurationTo(other ClockTime) int {
	duration := int(other) - int(c)
	if duration < 0 {
		duration += minutesPerDay
	}

	return duration
}

// AtDate anchors the clock time onto a calendar date in the given location.
// Used for presentation and sorting only - validity matching stays in
// calendar-date space.
func (c ClockTime) AtDate(date time.Time, location *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, location)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrClockTimeFormat
	}

	parsed, err := ParseClockTime(value)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// MarshalCSV & UnmarshalCSV let gocsv read timetable files with HH:MM columns
func (c ClockTime) MarshalCSV() (string, error) {
	return c.String(), nil
}

func (c *ClockTime) UnmarshalCSV(value string) error {
	parsed, err := ParseClockTime(value)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
