package slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artistbook/internal/database"
	"artistbook/internal/domain"
	"artistbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type slotsEnvelope struct {
	Data struct {
		Slots []domain.Slot `json:"slots"`
	} `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	handler := NewHandler(NewService(repository.NewScheduleRepository(db)))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return router, db
}

func resolve(t *testing.T, router *gin.Engine, query string) []domain.Slot {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?"+query, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload slotsEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Data.Slots
}

func TestResolveSlots_AgainstStoredSchedule(t *testing.T) {
	router, db := setupRouter(t)
	ctx := context.Background()

	rules := repository.NewAvailabilityRuleRepository(db)
	bookings := repository.NewBookingRepository(db)

	// Mondays 09:00-11:00 in 60-minute portrait slots.
	require.NoError(t, rules.Create(ctx, &domain.AvailabilityRule{
		ArtistID:        7,
		ServiceType:     "Portrait Session",
		DurationMinutes: 60,
		Price:           100,
		Currency:        "USD",
		RecurringDays:   []int{1},
		StartTime:       "09:00",
		EndTime:         "11:00",
	}))

	// 2026-09-07 is a Monday.
	slots := resolve(t, router, "artistId=7&from=2026-09-07&to=2026-09-07")
	require.Len(t, slots, 2)
	require.Equal(t, "09:00", slots[0].StartTime)
	require.Equal(t, "10:00", slots[1].StartTime)

	// A requested booking hides its slot.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	booked := &domain.Booking{
		ArtistID:        7,
		ClientID:        3,
		ServiceType:     "Portrait Session",
		Date:            monday,
		StartTime:       "09:00",
		DurationMinutes: 60,
		Price:           100,
		Currency:        "USD",
		Status:          domain.BookingRequested,
		StatusHistory:   []domain.StatusChange{{Status: domain.BookingRequested, Timestamp: time.Now().UTC()}},
	}
	require.NoError(t, bookings.Create(ctx, booked))

	slots = resolve(t, router, "artistId=7&from=2026-09-07&to=2026-09-07")
	require.Len(t, slots, 1)
	require.Equal(t, "10:00", slots[0].StartTime)

	// Cancelling the booking frees the slot again.
	booked.Status = domain.BookingCancelled
	ok, err := bookings.UpdateStatus(ctx, booked, domain.BookingRequested)
	require.NoError(t, err)
	require.True(t, ok)

	slots = resolve(t, router, "artistId=7&from=2026-09-07&to=2026-09-07")
	require.Len(t, slots, 2)

	// A week of Mondays yields slots only on the matching days.
	slots = resolve(t, router, "artistId=7&from=2026-09-07&to=2026-09-13")
	require.Len(t, slots, 2)
	for _, s := range slots {
		require.True(t, s.Date.Equal(monday))
	}
}

func TestResolveSlots_QueryValidation(t *testing.T) {
	router, _ := setupRouter(t)

	for _, query := range []string{
		"from=2026-09-07&to=2026-09-07",            // missing artistId
		"artistId=7&from=bad&to=2026-09-07",        // bad from
		"artistId=7&from=2026-09-07&to=2026-09-01", // inverted range
		"artistId=7&from=2026-01-01&to=2026-12-31", // range too wide
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?"+query, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusBadRequest, resp.Code, query)
	}
}
