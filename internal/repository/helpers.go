package repository

import (
	"time"
)

// dateLayout is the upstream's calendar date format.
const dateLayout = "2006-01-02"

// parseNullableDate parses an optional upstream date. Returns nil if the
// value is missing, empty, or fails to parse.
func parseNullableDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		// Some endpoints send full timestamps.
		t, err = time.Parse(time.RFC3339, *s)
		if err != nil {
			return nil
		}
	}
	return &t
}

// nullableDateToString formats an optional date for the upstream.
func nullableDateToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
