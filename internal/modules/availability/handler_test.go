package availability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"artistbook/internal/database"
	"artistbook/internal/domain"
	"artistbook/internal/middleware"
	"artistbook/internal/pkg/jwt"
	"artistbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type ruleEnvelope struct {
	Data struct {
		Rule domain.AvailabilityRule `json:"rule"`
	} `json:"data"`
}

type rulesEnvelope struct {
	Data struct {
		Rules []domain.AvailabilityRule `json:"rules"`
	} `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	handler := NewHandler(NewService(repository.NewAvailabilityRuleRepository(db)))
	jwtService := jwt.New("test-secret", time.Hour)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService), middleware.ArtistOnly())
	handler.RegisterRoutes(protected)

	return router, jwtService
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func artistToken(t *testing.T, jwtService *jwt.Service, userID int64) string {
	t.Helper()
	token, err := jwtService.GenerateToken(userID, string(domain.RoleArtist))
	require.NoError(t, err)
	return token
}

func TestAddRule_RequiresArtistRole(t *testing.T) {
	router, jwtService := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/availability", validRecurringRequest(), "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	clientToken, err := jwtService.GenerateToken(3, string(domain.RoleClient))
	require.NoError(t, err)
	resp = performRequest(router, http.MethodPost, "/api/v1/availability", validRecurringRequest(), clientToken)
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func TestRuleLifecycleOverHTTP(t *testing.T) {
	router, jwtService := setupRouter(t)
	token := artistToken(t, jwtService, 7)

	resp := performRequest(router, http.MethodPost, "/api/v1/availability", validRecurringRequest(), token)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created ruleEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	rule := created.Data.Rule
	require.NotZero(t, rule.ID)
	require.Equal(t, int64(7), rule.ArtistID)
	require.Equal(t, []int{1}, rule.RecurringDays)

	// Public listing works without a token.
	resp = performRequest(router, http.MethodGet, "/api/v1/availability/7", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	var listed rulesEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed.Data.Rules, 1)

	// The artist widens the window.
	update := validRecurringRequest()
	update.EndTime = "12:00"
	resp = performRequest(router, http.MethodPut, "/api/v1/availability/"+strconv.FormatInt(rule.ID, 10), update, token)
	require.Equal(t, http.StatusOK, resp.Code)
	var updated ruleEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, "12:00", updated.Data.Rule.EndTime)

	resp = performRequest(router, http.MethodDelete, "/api/v1/availability/"+strconv.FormatInt(rule.ID, 10), nil, token)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/availability/7", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	var afterDelete rulesEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&afterDelete))
	require.Empty(t, afterDelete.Data.Rules)
}

func TestUpdateRule_OtherArtistForbidden(t *testing.T) {
	router, jwtService := setupRouter(t)
	owner := artistToken(t, jwtService, 7)
	other := artistToken(t, jwtService, 8)

	resp := performRequest(router, http.MethodPost, "/api/v1/availability", validRecurringRequest(), owner)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created ruleEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	path := "/api/v1/availability/" + strconv.FormatInt(created.Data.Rule.ID, 10)

	resp = performRequest(router, http.MethodPut, path, validRecurringRequest(), other)
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(router, http.MethodDelete, path, nil, other)
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAddRule_OverlapRejectedOverHTTP(t *testing.T) {
	router, jwtService := setupRouter(t)
	token := artistToken(t, jwtService, 7)

	resp := performRequest(router, http.MethodPost, "/api/v1/availability", validRecurringRequest(), token)
	require.Equal(t, http.StatusCreated, resp.Code)

	overlapping := validRecurringRequest()
	overlapping.ServiceType = "Street Photography"
	overlapping.StartTime = "10:00"
	overlapping.EndTime = "12:00"
	overlapping.DurationMinutes = 120

	resp = performRequest(router, http.MethodPost, "/api/v1/availability", overlapping, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
