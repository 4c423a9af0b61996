package slots

import (
	"context"
	"time"

	"artistbook/internal/domain"
)

// ScheduleRepository yields the rule set and the active bookings of an artist
// for one date range as a single consistent snapshot.
type ScheduleRepository interface {
	ArtistSchedule(ctx context.Context, artistID int64, from, to time.Time) ([]domain.AvailabilityRule, []domain.Booking, error)
}
