package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"serenite/services/schedule"
	"serenite/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the availability engine.
type ScheduleHandler struct {
	Engine schedule.ScheduleEngine
}

func NewScheduleHandler(engine schedule.ScheduleEngine) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine}
}

// GetAvailabilityHandler handles GET /api/schedule/availability.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	professionalID := c.Query("professionalId")
	dateStr := c.Query("date")
	durationStr := c.Query("duration")
	if professionalID == "" || dateStr == "" || durationStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "professionalId, date and duration are required")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "duration must be an integer number of minutes")
		return
	}

	day, err := h.Engine.ComputeAvailableSlots(c.Request.Context(), professionalID, date, duration)
	if err != nil {
		var invalid *schedule.InvalidInputError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability")
		return
	}

	utils.JSONData(c, http.StatusOK, day)
}
