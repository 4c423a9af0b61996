package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = ParseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("9:30am")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(23*60+59))
}

func TestMinutesOverlap(t *testing.T) {
	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, MinutesOverlap(540, 600, 600, 660))
	assert.False(t, MinutesOverlap(600, 660, 540, 600))
	assert.True(t, MinutesOverlap(540, 600, 570, 630))
	assert.True(t, MinutesOverlap(540, 660, 570, 600))
	assert.True(t, MinutesOverlap(570, 600, 540, 660))
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2026, 9, 7, 2, 30, 0, 0, loc) // 2026-09-06 21:30 UTC
	out := DateOnly(in)
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), out)
}

func TestRuleConflictsWith(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	recurring := &AvailabilityRule{RecurringDays: []int{1}, StartTime: "09:00", EndTime: "11:00"}
	oneOff := &AvailabilityRule{Date: &monday, StartTime: "10:00", EndTime: "12:00"}
	tuesdays := &AvailabilityRule{RecurringDays: []int{2}, StartTime: "09:00", EndTime: "11:00"}
	adjacent := &AvailabilityRule{RecurringDays: []int{1}, StartTime: "11:00", EndTime: "13:00"}

	assert.True(t, recurring.ConflictsWith(oneOff))
	assert.True(t, oneOff.ConflictsWith(recurring))
	assert.False(t, recurring.ConflictsWith(tuesdays))
	assert.False(t, recurring.ConflictsWith(adjacent), "back-to-back windows do not conflict")
}
