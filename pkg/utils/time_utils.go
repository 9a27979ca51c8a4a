package utils

import (
	"fmt"
	"time"
)

const ISODate = "2006-01-02"

// ParseISODate reads a YYYY-MM-DD calendar date at UTC midnight.
// A full RFC3339 timestamp is accepted too; only its date part is kept.
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(ISODate, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(ISODate)
}

// ParseDateRange parses both ends of a trip and rejects reversed ranges.
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	s, err := ParseISODate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ParseISODate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return s, e, nil
}
