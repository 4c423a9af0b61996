package booking

// CreateBookingRequest reserves a resolved slot. The client identity comes
// from the authenticated token, never from the body.
type CreateBookingRequest struct {
	ArtistID        int64   `json:"artist_id" binding:"required"`
	Date            string  `json:"date" binding:"required"` // "2006-01-02"
	StartTime       string  `json:"start_time" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0"`
	ServiceType     string  `json:"service_type" binding:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	Currency        string  `json:"currency" binding:"required" validate:"len=3"`
	Notes           string  `json:"notes"`
	Location        string  `json:"location"`
}

// TransitionRequest carries the optional (sometimes required) reason for a
// lifecycle action.
type TransitionRequest struct {
	Reason string `json:"reason"`
}
