package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"artistbook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	guard    *ConflictGuard
}

func NewService(bookings BookingRepository) *Service {
	return &Service{
		bookings: bookings,
		guard:    NewConflictGuard(),
	}
}

// CreateBooking validates the request and reserves the slot. The overlap
// re-check and the insert run under the artist's reservation mutex; a
// conflict surfaces as ErrSlotUnavailable and the caller must re-resolve
// slots before retrying.
func (s *Service) CreateBooking(ctx context.Context, clientID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.ArtistID == clientID {
		return nil, fmt.Errorf("%w: artists cannot book themselves", ErrValidation)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	today := domain.DateOnly(time.Now().UTC())
	if date.Before(today) {
		return nil, fmt.Errorf("%w: date is in the past", ErrValidation)
	}

	startMin, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endMin := startMin + req.DurationMinutes
	if endMin > 24*60 {
		return nil, fmt.Errorf("%w: booking must not cross midnight", ErrValidation)
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		ArtistID:        req.ArtistID,
		ClientID:        clientID,
		ServiceType:     req.ServiceType,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Currency:        req.Currency,
		Notes:           req.Notes,
		Location:        req.Location,
		Status:          domain.BookingRequested,
		StatusHistory: []domain.StatusChange{
			{Status: domain.BookingRequested, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	unlock := s.guard.Lock(req.ArtistID)
	defer unlock()

	cnt, err := s.bookings.CountActiveOverlapping(ctx, req.ArtistID, date, startMin, endMin)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrSlotUnavailable
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return b, nil
}

// GetBooking returns the booking with its status history; only its parties
// may read it.
func (s *Service) GetBooking(ctx context.Context, id int64, actor Actor) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !b.IsParty(actor.UserID) {
		return nil, ErrForbidden
	}
	return b, nil
}

// GetActiveBookings lists the artist's requested/confirmed bookings in the
// date range.
func (s *Service) GetActiveBookings(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error) {
	return s.bookings.GetActiveInRange(ctx, artistID, from, to)
}

// ListForActor returns the actor's own bookings: the artist view or the
// client view depending on role.
func (s *Service) ListForActor(ctx context.Context, actor Actor) ([]domain.Booking, error) {
	if actor.Role == domain.RoleArtist {
		return s.bookings.ListByArtist(ctx, actor.UserID)
	}
	return s.bookings.ListByClient(ctx, actor.UserID)
}

func (s *Service) Accept(ctx context.Context, id int64, actor Actor) (*domain.Booking, error) {
	return s.transition(ctx, id, actor, ActionAccept, "")
}

func (s *Service) Decline(ctx context.Context, id int64, actor Actor, reason string) (*domain.Booking, error) {
	return s.transition(ctx, id, actor, ActionDecline, reason)
}

func (s *Service) Cancel(ctx context.Context, id int64, actor Actor, reason string) (*domain.Booking, error) {
	return s.transition(ctx, id, actor, ActionCancel, reason)
}

func (s *Service) Complete(ctx context.Context, id int64, actor Actor) (*domain.Booking, error) {
	return s.transition(ctx, id, actor, ActionComplete, "")
}

func (s *Service) transition(ctx context.Context, id int64, actor Actor, action Action, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	prev := b.Status
	if err := applyTransition(b, action, actor, reason, time.Now().UTC()); err != nil {
		return nil, err
	}

	ok, err := s.bookings.UpdateStatus(ctx, b, prev)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConcurrencyConflict
	}
	return b, nil
}

// CompleteOverdue moves confirmed bookings whose date has passed to
// completed. Run by the sweeper batch job, acting as the artist.
func (s *Service) CompleteOverdue(ctx context.Context) (int, error) {
	today := domain.DateOnly(time.Now().UTC())
	overdue, err := s.bookings.ListOverdueConfirmed(ctx, today)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range overdue {
		b := overdue[i]
		prev := b.Status
		actor := Actor{UserID: b.ArtistID, Role: domain.RoleArtist}
		if err := applyTransition(&b, ActionComplete, actor, "session date passed", time.Now().UTC()); err != nil {
			return completed, err
		}
		ok, err := s.bookings.UpdateStatus(ctx, &b, prev)
		if err != nil {
			return completed, err
		}
		if ok {
			completed++
		}
		// A row that moved out of confirmed since the list was read is
		// simply skipped; the next sweep settles it.
	}
	return completed, nil
}

// isUniqueViolation recognizes the idx_no_double_booking backstop firing on
// either database engine.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
