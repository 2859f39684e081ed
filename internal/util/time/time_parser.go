package time_parser

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseDate converts a "2006-01-02" date string to midnight UTC of that day.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format %s", value, dateLayout)
	}

	return t.UTC(), nil
}

// ParseDateClock combines a "2006-01-02" date with a "15:04" clock value
// into a single UTC timestamp. Clients submit observation start and end
// times as separate date and clock fields.
func ParseDateClock(dateValue, clockValue string) (time.Time, error) {
	day, err := ParseDate(dateValue)
	if err != nil {
		return time.Time{}, err
	}

	clock, err := time.Parse(clockLayout, clockValue)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected format %s", clockValue, clockLayout)
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		time.UTC,
	), nil
}
