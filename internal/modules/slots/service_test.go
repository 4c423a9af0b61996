package slots

import (
	"context"
	"testing"
	"time"

	"artistbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) ArtistSchedule(ctx context.Context, artistID int64, from, to time.Time) ([]domain.AvailabilityRule, []domain.Booking, error) {
	args := m.Called(ctx, artistID, from, to)
	var rules []domain.AvailabilityRule
	var bookings []domain.Booking
	if args.Get(0) != nil {
		rules = args.Get(0).([]domain.AvailabilityRule)
	}
	if args.Get(1) != nil {
		bookings = args.Get(1).([]domain.Booking)
	}
	return rules, bookings, args.Error(2)
}

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func mondayRule() domain.AvailabilityRule {
	return domain.AvailabilityRule{
		ID:              1,
		ArtistID:        7,
		ServiceType:     "Portrait Session",
		DurationMinutes: 60,
		Price:           100,
		Currency:        "USD",
		RecurringDays:   []int{1},
		StartTime:       "09:00",
		EndTime:         "11:00",
	}
}

func TestService_ResolveSlots_ExpandsRecurringRule(t *testing.T) {
	repo := new(MockScheduleRepository)
	repo.On("ArtistSchedule", mock.Anything, int64(7), monday, monday).
		Return([]domain.AvailabilityRule{mondayRule()}, []domain.Booking{}, nil)

	service := NewService(repo)
	slots, err := service.ResolveSlots(context.Background(), 7, monday, monday)

	assert.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "10:00", slots[1].StartTime)
	assert.Equal(t, "11:00", slots[1].EndTime)
	assert.Equal(t, 100.0, slots[0].Price)
	assert.Equal(t, int64(1), slots[0].RuleID)
}

func TestService_ResolveSlots_SkipsNonMatchingDays(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	repo := new(MockScheduleRepository)
	repo.On("ArtistSchedule", mock.Anything, int64(7), tuesday, tuesday).
		Return([]domain.AvailabilityRule{mondayRule()}, []domain.Booking{}, nil)

	service := NewService(repo)
	slots, err := service.ResolveSlots(context.Background(), 7, tuesday, tuesday)

	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestService_ResolveSlots_ExcludesBookedSlot(t *testing.T) {
	booked := domain.Booking{
		ArtistID:        7,
		Date:            monday,
		StartTime:       "09:00",
		DurationMinutes: 60,
		Status:          domain.BookingRequested,
	}

	repo := new(MockScheduleRepository)
	repo.On("ArtistSchedule", mock.Anything, int64(7), monday, monday).
		Return([]domain.AvailabilityRule{mondayRule()}, []domain.Booking{booked}, nil)

	service := NewService(repo)
	slots, err := service.ResolveSlots(context.Background(), 7, monday, monday)

	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].StartTime)
}

func TestService_ResolveSlots_PartialOverlapHidesBothSlots(t *testing.T) {
	// A 09:30-11:00 booking intersects both the 09:00 and the 10:00 slot.
	booked := domain.Booking{
		ArtistID:        7,
		Date:            monday,
		StartTime:       "09:30",
		DurationMinutes: 90,
		Status:          domain.BookingConfirmed,
	}

	repo := new(MockScheduleRepository)
	repo.On("ArtistSchedule", mock.Anything, int64(7), monday, monday).
		Return([]domain.AvailabilityRule{mondayRule()}, []domain.Booking{booked}, nil)

	service := NewService(repo)
	slots, err := service.ResolveSlots(context.Background(), 7, monday, monday)

	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestService_ResolveSlots_OneOffRuleOnItsDateOnly(t *testing.T) {
	date := monday
	rule := domain.AvailabilityRule{
		ID:              2,
		ArtistID:        7,
		ServiceType:     "Studio Day",
		DurationMinutes: 120,
		Price:           250,
		Currency:        "USD",
		Date:            &date,
		StartTime:       "12:00",
		EndTime:         "16:00",
	}
	nextMonday := monday.AddDate(0, 0, 7)

	repo := new(MockScheduleRepository)
	repo.On("ArtistSchedule", mock.Anything, int64(7), monday, nextMonday).
		Return([]domain.AvailabilityRule{rule}, []domain.Booking{}, nil)

	service := NewService(repo)
	slots, err := service.ResolveSlots(context.Background(), 7, monday, nextMonday)

	assert.NoError(t, err)
	assert.Len(t, slots, 2)
	for _, slot := range slots {
		assert.True(t, slot.Date.Equal(monday))
	}
}

func TestService_ResolveSlots_MultiDayOrdering(t *testing.T) {
	rule := mondayRule()
	rule.RecurringDays = []int{1, 3} // Monday and Wednesday
	wednesday := monday.AddDate(0, 0, 2)

	repo := new(MockScheduleRepository)
	repo.On("ArtistSchedule", mock.Anything, int64(7), monday, wednesday).
		Return([]domain.AvailabilityRule{rule}, []domain.Booking{}, nil)

	service := NewService(repo)
	slots, err := service.ResolveSlots(context.Background(), 7, monday, wednesday)

	assert.NoError(t, err)
	assert.Len(t, slots, 4)
	assert.True(t, slots[0].Date.Equal(monday))
	assert.True(t, slots[1].Date.Equal(monday))
	assert.True(t, slots[2].Date.Equal(wednesday))
	assert.True(t, slots[3].Date.Equal(wednesday))
	assert.Equal(t, "09:00", slots[2].StartTime)
}

func TestService_ResolveSlots_RangeValidation(t *testing.T) {
	repo := new(MockScheduleRepository)
	service := NewService(repo)

	_, err := service.ResolveSlots(context.Background(), 7, monday, monday.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.ResolveSlots(context.Background(), 7, monday, monday.AddDate(0, 0, MaxRangeDays+1))
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "ArtistSchedule")
}
