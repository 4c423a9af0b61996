package domain

import "time"

// Slot is a concrete bookable interval derived from an availability rule for
// a specific date. Slots are never persisted; their identity is the
// (artist, date, start time) fingerprint.
type Slot struct {
	ArtistID        int64     `json:"artist_id"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	ServiceType     string    `json:"service_type"`
	RuleID          int64     `json:"rule_id"`
}

func (s *Slot) StartMinute() int {
	m, err := ParseClock(s.StartTime)
	if err != nil {
		return 0
	}
	return m
}

func (s *Slot) EndMinute() int {
	return s.StartMinute() + s.DurationMinutes
}
