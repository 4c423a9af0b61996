package domain

import (
	"fmt"
	"time"
)

const (
	ClockFormat = "15:04"
	DateFormat  = "2006-01-02"
)

// ParseClock converts a "15:04" wall-clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "15:04".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "2006-01-02" date into a midnight-UTC time.Time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d.UTC(), nil
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MinutesOverlap reports whether [start1, end1) and [start2, end2) intersect.
func MinutesOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}
