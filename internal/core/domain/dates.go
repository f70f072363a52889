package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the calendar-date rendering used as the daily assignment key.
const DateLayout = "2006-01-02"

// noDate is the wire marker for an absent optional date.
const noDate = "-1"

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey renders the calendar date of t, in UTC, as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrMalformed, s, err)
	}
	return t, nil
}

// EarliestOf returns the earliest of base and every non-nil candidate.
func EarliestOf(base time.Time, candidates ...*time.Time) time.Time {
	earliest := base
	for _, c := range candidates {
		if c != nil && c.Before(earliest) {
			earliest = *c
		}
	}
	return earliest
}

func formatOptionalMillis(t *time.Time) string {
	if t == nil {
		return noDate
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseOptionalMillis(field, s string) (*time.Time, error) {
	if s == noDate {
		return nil, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms < 0 || strconv.FormatInt(ms, 10) != s {
		return nil, fmt.Errorf("%w: %s %q is not a unix millisecond timestamp", ErrMalformed, field, s)
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}

// TimePtr returns a pointer to a copy of t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
