package booking

import (
	"context"

	bookingRepo "serenite/database/repository/booking"
	"serenite/models"
	"serenite/services/schedule"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// CreateBookingRequest is the validated input for a new appointment.
type CreateBookingRequest struct {
	ProfessionalID  string `json:"professionalId" binding:"required"`
	ClientID        string `json:"clientId" binding:"required"`
	Date            string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime       string `json:"startTime" binding:"required"` // "HH:MM"
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	Service         string `json:"service"`
	DepositCents    int64  `json:"depositCents"`
}

// BookingService manages the appointment lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	MarkNoShow(ctx context.Context, bookingID string) error
	ListClientBookings(ctx context.Context, clientID string) ([]models.Booking, error)
}

// ReminderScheduler enqueues appointment reminder tasks.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking *models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Engine    schedule.ScheduleEngine
	Payments  PaymentHandler
	Reminders ReminderScheduler
	Cache     *redis.Client
}

// AsynqReminderScheduler schedules reminders on the asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   int // minutes before the appointment start
}
