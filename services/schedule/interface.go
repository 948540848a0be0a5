package schedule

import (
	"context"
	"time"

	availabilityRepo "serenite/database/repository/availability"
	bookingRepo "serenite/database/repository/booking"
	"serenite/models"
)

// ScheduleEngine computes bookable slots for a professional on a date.
type ScheduleEngine interface {
	// ComputeAvailableSlots resolves the professional's working window for the
	// date (block > custom hours > default), enumerates candidate starts at the
	// configured step, and drops candidates overlapping an active booking.
	// The time-of-day component of date is ignored.
	ComputeAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) (models.DayAvailability, error)
}

// DefaultScheduleEngine is the production engine. It is read-only and safe for
// concurrent use; write-time conflict checking lives in the booking repository.
type DefaultScheduleEngine struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	DefaultWindow    models.TimeWindow // used when no availability record exists
	StepMinutes      int               // candidate start granularity
}
