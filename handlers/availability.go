package handlers

import (
	"net/http"

	availabilityRepo "serenite/database/repository/availability"
	"serenite/models"
	"serenite/services/schedule"
	"serenite/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AvailabilityHandler manages per-date schedule overrides (blocks and custom hours).
type AvailabilityHandler struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache *redis.Client
}

func NewAvailabilityHandler(repo availabilityRepo.AvailabilityRepository, cache *redis.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo, Cache: cache}
}

type upsertDayRequest struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	IsAvailable    *bool  `json:"isAvailable" binding:"required"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Reason         string `json:"reason"`
}

// UpsertDayHandler handles PUT /api/schedule/days.
func (h *AvailabilityHandler) UpsertDayHandler(c *gin.Context) {
	var req upsertDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	av := models.Availability{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		IsAvailable:    *req.IsAvailable,
		Reason:         req.Reason,
	}

	if av.IsAvailable && req.StartTime != "" && req.EndTime != "" {
		start, err := utils.ClockToMinutes(req.StartTime)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		end, err := utils.ClockToMinutes(req.EndTime)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if end <= start {
			utils.JSONError(c, http.StatusBadRequest, "endTime must be after startTime")
			return
		}
		av.Start, av.End = start, end
	}

	if err := h.Repo.Upsert(c.Request.Context(), &av); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save schedule override")
		return
	}
	schedule.InvalidateDay(c.Request.Context(), h.Cache, av.ProfessionalID, av.Date)

	utils.JSONData(c, http.StatusOK, av)
}

// DeleteDayHandler handles DELETE /api/schedule/days/:professionalId/:date.
func (h *AvailabilityHandler) DeleteDayHandler(c *gin.Context) {
	professionalID := c.Param("professionalId")
	date := c.Param("date")

	if err := h.Repo.DeleteForDate(c.Request.Context(), professionalID, date); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete schedule override")
		return
	}
	schedule.InvalidateDay(c.Request.Context(), h.Cache, professionalID, date)

	utils.JSONData(c, http.StatusOK, gin.H{"professionalId": professionalID, "date": date})
}

// ListDaysHandler handles GET /api/schedule/days/:professionalId.
func (h *AvailabilityHandler) ListDaysHandler(c *gin.Context) {
	professionalID := c.Param("professionalId")

	records, err := h.Repo.ListForProfessional(c.Request.Context(), professionalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list schedule overrides")
		return
	}
	utils.JSONData(c, http.StatusOK, records)
}
