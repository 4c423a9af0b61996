package repository

import (
	"context"
	"time"

	"artistbook/internal/domain"

	"gorm.io/gorm"
)

// ScheduleRepository reads the inputs of one slot resolution (the artist's
// rule set and their active bookings) inside a single transaction, so the
// resolver never sees a rule set and a booking set from different moments.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ArtistSchedule(ctx context.Context, artistID int64, from, to time.Time) ([]domain.AvailabilityRule, []domain.Booking, error) {
	var (
		rules    []domain.AvailabilityRule
		bookings []domain.Booking
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ruleModels []availabilityRuleModel
		if res := tx.Where("artist_id = ?", artistID).Order("id").Find(&ruleModels); res.Error != nil {
			return res.Error
		}
		rules = make([]domain.AvailabilityRule, 0, len(ruleModels))
		for _, m := range ruleModels {
			rules = append(rules, *toDomainRule(m))
		}

		var bookingModels []bookingModel
		res := tx.Where("artist_id = ? AND status IN ? AND date >= ? AND date <= ?",
			artistID, []string{"requested", "confirmed"}, domain.DateOnly(from), domain.DateOnly(to)).
			Order("date, start_minute").
			Find(&bookingModels)
		if res.Error != nil {
			return res.Error
		}
		var err error
		bookings, err = toDomainBookings(bookingModels)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return rules, bookings, nil
}
