package repository

import (
	"context"
	"encoding/json"
	"time"

	"artistbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	ArtistID        int64     `gorm:"column:artist_id;index"`
	ClientID        int64     `gorm:"column:client_id;index"`
	ServiceType     string    `gorm:"column:service_type"`
	Date            time.Time `gorm:"column:date;index"`
	StartMinute     int       `gorm:"column:start_minute"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Price           float64   `gorm:"column:price"`
	Currency        string    `gorm:"column:currency"`
	Notes           *string   `gorm:"column:notes"`
	Location        *string   `gorm:"column:location"`
	Status          string    `gorm:"column:status;index"`
	StatusHistory   string    `gorm:"column:status_history"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) (*domain.Booking, error) {
	var notes, location string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.Location != nil {
		location = *m.Location
	}

	var history []domain.StatusChange
	if m.StatusHistory != "" {
		if err := json.Unmarshal([]byte(m.StatusHistory), &history); err != nil {
			return nil, err
		}
	}

	return &domain.Booking{
		ID:              m.ID,
		ArtistID:        m.ArtistID,
		ClientID:        m.ClientID,
		ServiceType:     m.ServiceType,
		Date:            domain.DateOnly(m.Date),
		StartTime:       domain.FormatClock(m.StartMinute),
		DurationMinutes: m.DurationMinutes,
		Price:           m.Price,
		Currency:        m.Currency,
		Notes:           notes,
		Location:        location,
		Status:          domain.BookingStatus(m.Status),
		StatusHistory:   history,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

func toBookingModel(b *domain.Booking) (bookingModel, error) {
	var notes, location *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.Location != "" {
		v := b.Location
		location = &v
	}

	history, err := json.Marshal(b.StatusHistory)
	if err != nil {
		return bookingModel{}, err
	}

	return bookingModel{
		ID:              b.ID,
		ArtistID:        b.ArtistID,
		ClientID:        b.ClientID,
		ServiceType:     b.ServiceType,
		Date:            domain.DateOnly(b.Date),
		StartMinute:     b.StartMinute(),
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		Currency:        b.Currency,
		Notes:           notes,
		Location:        location,
		Status:          string(b.Status),
		StatusHistory:   string(history),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m, err := toBookingModel(b)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainBooking(m)
	if err != nil {
		return err
	}
	*b = *out
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m)
}

// CountActiveOverlapping counts active bookings of the artist whose
// [start, start+duration) interval intersects [startMin, endMin) on the
// given day. Dates must be midnight UTC on both sides.
func (r *BookingRepository) CountActiveOverlapping(ctx context.Context, artistID int64, day time.Time, startMin, endMin int) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE artist_id = ?
  AND date = ?
  AND status IN ('requested', 'confirmed')
  AND start_minute < ?
  AND ? < start_minute + duration_minutes
`
	tx := r.db.WithContext(ctx).Raw(q, artistID, domain.DateOnly(day), endMin, startMin).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// GetActiveInRange returns the artist's requested/confirmed bookings whose
// date falls inside [from, to], ordered chronologically.
func (r *BookingRepository) GetActiveInRange(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("artist_id = ? AND status IN ? AND date >= ? AND date <= ?",
			artistID, []string{"requested", "confirmed"}, domain.DateOnly(from), domain.DateOnly(to)).
		Order("date, start_minute").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models)
}

// UpdateStatus persists a lifecycle transition with a compare-and-set on the
// previous status. Returns false when the row was concurrently moved out of
// the expected status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, expected domain.BookingStatus) (bool, error) {
	history, err := json.Marshal(b.StatusHistory)
	if err != nil {
		return false, err
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", b.ID, string(expected)).
		Updates(map[string]any{
			"status":         string(b.Status),
			"status_history": string(history),
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *BookingRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("date, start_minute").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models)
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date, start_minute").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models)
}

// ListOverdueConfirmed returns confirmed bookings whose date is strictly
// before the given day. Used by the completion sweeper.
func (r *BookingRepository) ListOverdueConfirmed(ctx context.Context, before time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ? AND date < ?", string(domain.BookingConfirmed), domain.DateOnly(before)).
		Order("date, start_minute").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models)
}

func toDomainBookings(models []bookingModel) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		b, err := toDomainBooking(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}
