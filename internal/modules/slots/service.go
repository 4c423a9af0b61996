package slots

import (
	"context"
	"fmt"
	"sort"
	"time"

	"artistbook/internal/domain"
)

// MaxRangeDays caps one resolution request; longer horizons are resolved in
// pages by the caller.
const MaxRangeDays = 92

type Service struct {
	schedule ScheduleRepository
}

func NewService(schedule ScheduleRepository) *Service {
	return &Service{schedule: schedule}
}

// ResolveSlots materializes the artist's bookable slots for every calendar
// date in [from, to], excluding any slot that overlaps an active booking.
// Slots are derived on the fly and returned ordered by (date, start time).
func (s *Service) ResolveSlots(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Slot, error) {
	from = domain.DateOnly(from)
	to = domain.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes range start", ErrValidation)
	}
	if to.Sub(from) > MaxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range exceeds %d days", ErrValidation, MaxRangeDays)
	}

	rules, bookings, err := s.schedule.ArtistSchedule(ctx, artistID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Slot, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for i := range rules {
			rule := &rules[i]
			if !rule.AppliesOn(day) {
				continue
			}
			out = append(out, expandRule(rule, day, bookings)...)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartMinute() < out[j].StartMinute()
	})
	return out, nil
}

// expandRule partitions the rule's window on one day into duration-sized
// slots and drops the ones an active booking intersects. Overlap is interval
// overlap, not fingerprint equality: a booking may carry a duration that no
// longer matches the rule's slot size.
func expandRule(rule *domain.AvailabilityRule, day time.Time, active []domain.Booking) []domain.Slot {
	startMin, endMin := rule.Window()
	if rule.DurationMinutes <= 0 || endMin <= startMin {
		return nil
	}

	slots := make([]domain.Slot, 0, (endMin-startMin)/rule.DurationMinutes)
	for cur := startMin; cur+rule.DurationMinutes <= endMin; cur += rule.DurationMinutes {
		taken := false
		for i := range active {
			if active[i].OverlapsInterval(day, cur, cur+rule.DurationMinutes) {
				taken = true
				break
			}
		}
		if taken {
			continue
		}

		slots = append(slots, domain.Slot{
			ArtistID:        rule.ArtistID,
			Date:            day,
			StartTime:       domain.FormatClock(cur),
			EndTime:         domain.FormatClock(cur + rule.DurationMinutes),
			DurationMinutes: rule.DurationMinutes,
			Price:           rule.Price,
			Currency:        rule.Currency,
			ServiceType:     rule.ServiceType,
			RuleID:          rule.ID,
		})
	}
	return slots
}
