package handlers

import (
	"context"
	"errors"
	"net/http"

	bookingRepo "serenite/database/repository/booking"
	"serenite/services/booking"
	"serenite/services/schedule"
	"serenite/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the appointment lifecycle.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var invalid *schedule.InvalidInputError
		switch {
		case errors.As(err, &invalid):
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "the requested slot is no longer available")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	utils.JSONData(c, http.StatusCreated, created)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	h.release(c, h.Service.CancelBooking)
}

// MarkNoShowHandler handles POST /api/bookings/:id/no-show.
func (h *BookingHandler) MarkNoShowHandler(c *gin.Context) {
	h.release(c, h.Service.MarkNoShow)
}

func (h *BookingHandler) release(c *gin.Context, op func(ctx context.Context, id string) error) {
	id := c.Param("id")
	if err := op(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking")
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"id": id})
}

// ListClientBookingsHandler handles GET /api/bookings/client/:clientId.
func (h *BookingHandler) ListClientBookingsHandler(c *gin.Context) {
	clientID := c.Param("clientId")

	bookings, err := h.Service.ListClientBookings(c.Request.Context(), clientID)
	if err != nil {
		var invalid *schedule.InvalidInputError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSONData(c, http.StatusOK, bookings)
}
