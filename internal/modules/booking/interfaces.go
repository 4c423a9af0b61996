package booking

import (
	"context"
	"time"

	"artistbook/internal/domain"
)

// BookingRepository is the persistence contract for the booking ledger.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CountActiveOverlapping(ctx context.Context, artistID int64, day time.Time, startMin, endMin int) (int64, error)
	GetActiveInRange(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, b *domain.Booking, expected domain.BookingStatus) (bool, error)
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Booking, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
	ListOverdueConfirmed(ctx context.Context, before time.Time) ([]domain.Booking, error)
}
