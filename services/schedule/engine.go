package schedule

import (
	"context"
	"sync"
	"time"

	"serenite/models"
	"serenite/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ComputeAvailableSlots implements ScheduleEngine.
func (e *DefaultScheduleEngine) ComputeAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) (models.DayAvailability, error) {
	if professionalID == "" {
		return models.DayAvailability{}, NewInvalidInputError("professionalId", "must not be empty")
	}
	if date.IsZero() {
		return models.DayAvailability{}, NewInvalidInputError("date", "must be a valid calendar day")
	}
	if durationMinutes <= 0 {
		return models.DayAvailability{}, NewInvalidInputError("duration", "must be a positive number of minutes")
	}

	day := date.Format(dateLayout)
	logger := utils.GetLogger()

	// The schedule lookup and the booking fetch are independent reads; issue
	// them concurrently and join before computing.
	var (
		wg          sync.WaitGroup
		daySchedule models.DaySchedule
		scheduleErr error
		bookings    []models.Booking
		bookingsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		daySchedule, scheduleErr = e.resolveDaySchedule(ctx, professionalID, day)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = e.BookingRepo.FindActiveForDate(ctx, professionalID, day)
	}()
	wg.Wait()

	if scheduleErr != nil {
		return models.DayAvailability{}, scheduleErr
	}

	if daySchedule.Blocked {
		logger.Debug("day is blocked",
			zap.String("professionalID", professionalID),
			zap.String("date", day),
			zap.String("reason", daySchedule.Reason))
		return models.DayAvailability{
			Date:    day,
			Blocked: true,
			Reason:  daySchedule.Reason,
			Slots:   []string{},
		}, nil
	}

	if bookingsErr != nil {
		return models.DayAvailability{}, &DataAccessError{Op: "find active bookings", Err: bookingsErr}
	}

	starts := candidateStarts(daySchedule.Window, durationMinutes, e.StepMinutes)
	starts = filterFree(starts, durationMinutes, bookings)

	slots := make([]string, len(starts))
	for i, t := range starts {
		slots[i] = utils.MinutesToClock(t)
	}

	logger.Debug("computed available slots",
		zap.String("professionalID", professionalID),
		zap.String("date", day),
		zap.Int("duration", durationMinutes),
		zap.Int("slots", len(slots)))

	return models.DayAvailability{Date: day, Slots: slots}, nil
}
