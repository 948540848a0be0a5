package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serenite/models"
	"serenite/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	day models.DayAvailability
	err error
}

func (s *stubEngine) ComputeAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) (models.DayAvailability, error) {
	if s.err != nil {
		return models.DayAvailability{}, s.err
	}
	return s.day, nil
}

func newTestRouter(engine schedule.ScheduleEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewScheduleHandler(engine)
	r.GET("/api/schedule/availability", h.GetAvailabilityHandler)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetAvailability_Success(t *testing.T) {
	engine := &stubEngine{day: models.DayAvailability{
		Date:  "2026-09-14",
		Slots: []string{"09:00", "09:15"},
	}}
	r := newTestRouter(engine)

	w := get(r, "/api/schedule/availability?professionalId=pro-1&date=2026-09-14&duration=50")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                   `json:"success"`
		Data    models.DayAvailability `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2026-09-14", resp.Data.Date)
	assert.Equal(t, []string{"09:00", "09:15"}, resp.Data.Slots)
	assert.False(t, resp.Data.Blocked)
}

func TestGetAvailability_MissingParams(t *testing.T) {
	r := newTestRouter(&stubEngine{})

	urls := []string{
		"/api/schedule/availability",
		"/api/schedule/availability?professionalId=pro-1",
		"/api/schedule/availability?professionalId=pro-1&date=2026-09-14",
		"/api/schedule/availability?date=2026-09-14&duration=50",
	}
	for _, url := range urls {
		w := get(r, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	}
}

func TestGetAvailability_MalformedParams(t *testing.T) {
	r := newTestRouter(&stubEngine{})

	assert.Equal(t, http.StatusBadRequest,
		get(r, "/api/schedule/availability?professionalId=p&date=14-09-2026&duration=50").Code)
	assert.Equal(t, http.StatusBadRequest,
		get(r, "/api/schedule/availability?professionalId=p&date=2026-09-14&duration=fifty").Code)
}

func TestGetAvailability_EngineInvalidInputIs400(t *testing.T) {
	engine := &stubEngine{err: schedule.NewInvalidInputError("duration", "must be a positive number of minutes")}
	r := newTestRouter(engine)

	w := get(r, "/api/schedule/availability?professionalId=p&date=2026-09-14&duration=-5")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailability_DataAccessErrorIs500(t *testing.T) {
	engine := &stubEngine{err: &schedule.DataAccessError{Op: "find active bookings", Err: assert.AnError}}
	r := newTestRouter(engine)

	w := get(r, "/api/schedule/availability?professionalId=p&date=2026-09-14&duration=50")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAvailability_BlockedDay(t *testing.T) {
	engine := &stubEngine{day: models.DayAvailability{
		Date:    "2026-09-14",
		Blocked: true,
		Reason:  "Congé",
		Slots:   []string{},
	}}
	r := newTestRouter(engine)

	w := get(r, "/api/schedule/availability?professionalId=pro-1&date=2026-09-14&duration=50")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			IsBlocked bool     `json:"isBlocked"`
			Reason    string   `json:"reason"`
			Slots     []string `json:"slots"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsBlocked)
	assert.Equal(t, "Congé", resp.Data.Reason)
	assert.Empty(t, resp.Data.Slots)
}
