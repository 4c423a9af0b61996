package availability

// RuleRequest carries the fields of a new or replacement availability rule.
// Exactly one of Date and RecurringDays must be set.
type RuleRequest struct {
	ServiceType     string  `json:"service_type" binding:"required" validate:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	Currency        string  `json:"currency" binding:"required" validate:"len=3"`
	Date            string  `json:"date,omitempty"`           // "2006-01-02"
	RecurringDays   []int   `json:"recurring_days,omitempty"` // 0=Sunday .. 6=Saturday
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
}
