package domain

import "time"

// AvailabilityRule is an artist-declared window in which a service can be
// booked. A rule is either one-off (Date set) or recurring weekly
// (RecurringDays set); the two are mutually exclusive.
type AvailabilityRule struct {
	ID              int64      `json:"id"`
	ArtistID        int64      `json:"artist_id"`
	ServiceType     string     `json:"service_type"`
	DurationMinutes int        `json:"duration_minutes"`
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	Date            *time.Time `json:"date,omitempty"`
	RecurringDays   []int      `json:"recurring_days,omitempty"` // 0=Sunday .. 6=Saturday
	StartTime       string     `json:"start_time"`               // "15:04"
	EndTime         string     `json:"end_time"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (r *AvailabilityRule) IsRecurring() bool {
	return len(r.RecurringDays) > 0
}

// AppliesOn reports whether the rule produces slots on the given calendar day.
func (r *AvailabilityRule) AppliesOn(day time.Time) bool {
	day = DateOnly(day)
	if r.Date != nil {
		return DateOnly(*r.Date).Equal(day)
	}
	wd := int(day.Weekday())
	for _, d := range r.RecurringDays {
		if d == wd {
			return true
		}
	}
	return false
}

// Window returns the rule's time range as minutes since midnight. Rules are
// validated on the way into the store, so parse failures map to an empty
// window here.
func (r *AvailabilityRule) Window() (startMin, endMin int) {
	s, err := ParseClock(r.StartTime)
	if err != nil {
		return 0, 0
	}
	e, err := ParseClock(r.EndTime)
	if err != nil {
		return 0, 0
	}
	return s, e
}

// SharesDayWith reports whether two rules can ever apply on the same calendar
// day: recurring rules share a weekday, one-off rules share the exact date,
// and a one-off rule meets a recurring one on the one-off date's weekday.
func (r *AvailabilityRule) SharesDayWith(other *AvailabilityRule) bool {
	switch {
	case r.Date != nil && other.Date != nil:
		return DateOnly(*r.Date).Equal(DateOnly(*other.Date))
	case r.Date != nil:
		return other.AppliesOn(*r.Date)
	case other.Date != nil:
		return r.AppliesOn(*other.Date)
	default:
		for _, a := range r.RecurringDays {
			for _, b := range other.RecurringDays {
				if a == b {
					return true
				}
			}
		}
		return false
	}
}

// ConflictsWith reports whether two rules of the same artist would publish
// overlapping time windows on some day, regardless of service type.
func (r *AvailabilityRule) ConflictsWith(other *AvailabilityRule) bool {
	if !r.SharesDayWith(other) {
		return false
	}
	s1, e1 := r.Window()
	s2, e2 := other.Window()
	return MinutesOverlap(s1, e1, s2, e2)
}
