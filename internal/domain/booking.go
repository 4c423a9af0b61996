package domain

import "time"

type BookingStatus string

const (
	BookingRequested BookingStatus = "requested"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ActiveStatuses are the statuses that occupy a slot exclusively. Freeing a
// slot is purely a status change out of this set.
var ActiveStatuses = []BookingStatus{BookingRequested, BookingConfirmed}

// IsActive reports whether the status occupies its time interval.
func (s BookingStatus) IsActive() bool {
	return s == BookingRequested || s == BookingConfirmed
}

// IsTerminal reports whether no further transitions are permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingDeclined || s == BookingCancelled || s == BookingCompleted
}

// StatusChange is one entry in a booking's status history.
type StatusChange struct {
	Status    BookingStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Reason    string        `json:"reason,omitempty"`
}

type Booking struct {
	ID              int64          `json:"id"`
	ArtistID        int64          `json:"artist_id"`
	ClientID        int64          `json:"client_id"`
	ServiceType     string         `json:"service_type"`
	Date            time.Time      `json:"date"`       // midnight UTC
	StartTime       string         `json:"start_time"` // "15:04"
	DurationMinutes int            `json:"duration_minutes"`
	Price           float64        `json:"price"`
	Currency        string         `json:"currency"`
	Notes           string         `json:"notes,omitempty"`
	Location        string         `json:"location,omitempty"`
	Status          BookingStatus  `json:"status"`
	StatusHistory   []StatusChange `json:"status_history"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// StartMinute returns the booking's start as minutes since midnight.
// StartTime is validated at creation, so a parse failure maps to 0.
func (b *Booking) StartMinute() int {
	m, err := ParseClock(b.StartTime)
	if err != nil {
		return 0
	}
	return m
}

func (b *Booking) EndMinute() int {
	return b.StartMinute() + b.DurationMinutes
}

func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsParty reports whether the user is the booking's artist or client.
func (b *Booking) IsParty(userID int64) bool {
	return userID == b.ArtistID || userID == b.ClientID
}

// OverlapsInterval reports whether the booking intersects [startMin, endMin)
// on the given day.
func (b *Booking) OverlapsInterval(day time.Time, startMin, endMin int) bool {
	if !DateOnly(b.Date).Equal(DateOnly(day)) {
		return false
	}
	return MinutesOverlap(b.StartMinute(), b.EndMinute(), startMin, endMin)
}
