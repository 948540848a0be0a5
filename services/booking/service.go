package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "serenite/database/repository/booking"
	"serenite/models"
	"serenite/services/schedule"
	"serenite/services/tasks"
	"serenite/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBookingNotFound is returned for lifecycle operations on unknown bookings.
var ErrBookingNotFound = errors.New("booking not found")

func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, schedule.NewInvalidInputError("date", "expected YYYY-MM-DD")
	}
	start, err := utils.ClockToMinutes(req.StartTime)
	if err != nil {
		return nil, schedule.NewInvalidInputError("startTime", err.Error())
	}
	if req.DurationMinutes <= 0 {
		return nil, schedule.NewInvalidInputError("durationMinutes", "must be a positive number of minutes")
	}
	end := start + req.DurationMinutes
	if end > utils.MinutesPerDay {
		return nil, schedule.NewInvalidInputError("durationMinutes", "appointment must end before midnight")
	}

	// The requested start must be one the engine would offer right now. This
	// covers blocked days, custom hours and currently known bookings; the
	// transactional insert below closes the remaining race.
	day, err := s.Engine.ComputeAvailableSlots(ctx, req.ProfessionalID, date, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if day.Blocked {
		return nil, fmt.Errorf("professional is unavailable on %s (%s): %w", req.Date, day.Reason, bookingRepo.ErrSlotTaken)
	}
	if !containsSlot(day.Slots, req.StartTime) {
		return nil, bookingRepo.ErrSlotTaken
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		Date:           req.Date,
		Start:          start,
		End:            end,
		Service:        req.Service,
		Status:         models.BookingStatusConfirmed,
		DepositCents:   req.DepositCents,
		CreatedAt:      time.Now(),
	}

	if req.DepositCents > 0 && s.Payments != nil {
		intentID, err := s.Payments.CreateDepositIntent(ctx, booking)
		if err != nil {
			return nil, fmt.Errorf("failed to create deposit payment intent: %w", err)
		}
		booking.PaymentIntent = intentID
	}

	if err := s.Repo.CreateIfFree(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidateDay(ctx, booking.ProfessionalID, booking.Date)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, booking); err != nil {
			// Reminder delivery is best-effort; the booking itself stands.
			logger.Error("failed to schedule reminder", zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("professionalID", booking.ProfessionalID),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start))
	return booking, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	return s.release(ctx, bookingID, models.BookingStatusCancelled)
}

func (s *DefaultBookingService) MarkNoShow(ctx context.Context, bookingID string) error {
	return s.release(ctx, bookingID, models.BookingStatusNoShow)
}

// release moves the booking to an inactive status and frees its slot.
func (s *DefaultBookingService) release(ctx context.Context, bookingID, status string) error {
	booking, err := s.Repo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if !booking.Active() {
		return fmt.Errorf("booking %s is already %s", bookingID, booking.Status)
	}

	if err := s.Repo.SetStatus(ctx, bookingID, status); err != nil {
		return err
	}
	s.invalidateDay(ctx, booking.ProfessionalID, booking.Date)

	utils.GetLogger().Info("booking released",
		zap.String("bookingID", bookingID),
		zap.String("status", status))
	return nil
}

func (s *DefaultBookingService) ListClientBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	if clientID == "" {
		return nil, schedule.NewInvalidInputError("clientId", "must not be empty")
	}
	return s.Repo.ListForClient(ctx, clientID)
}

func (s *DefaultBookingService) invalidateDay(ctx context.Context, professionalID, date string) {
	if s.Cache != nil {
		schedule.InvalidateDay(ctx, s.Cache, professionalID, date)
	}
}

func containsSlot(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}

// ScheduleReminder enqueues a reminder that fires Lead minutes before the
// appointment start.
func (r *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, booking *models.Booking) error {
	startClock := utils.MinutesToClock(booking.Start)
	fireAt, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+startClock, time.Local)
	if err != nil {
		return fmt.Errorf("could not derive reminder time: %w", err)
	}
	fireAt = fireAt.Add(-time.Duration(r.Lead) * time.Minute)

	payload := models.ReminderPayload{
		BookingID:      booking.ID,
		ClientID:       booking.ClientID,
		ProfessionalID: booking.ProfessionalID,
		Date:           booking.Date,
		StartClock:     startClock,
		Service:        booking.Service,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = r.Client.EnqueueContext(ctx, task, opts...)
	return err
}
