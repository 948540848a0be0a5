package schedule

import (
	"context"

	"serenite/models"
)

// resolveDaySchedule determines the usable working window for the date.
// Precedence: explicit block > explicit custom hours > default window.
// Absence of any availability record is normal data, not an error.
func (e *DefaultScheduleEngine) resolveDaySchedule(ctx context.Context, professionalID, date string) (models.DaySchedule, error) {
	block, err := e.AvailabilityRepo.FindBlock(ctx, professionalID, date)
	if err != nil {
		return models.DaySchedule{}, &DataAccessError{Op: "find day block", Err: err}
	}
	if block != nil {
		return models.DaySchedule{Blocked: true, Reason: block.Reason}, nil
	}

	custom, err := e.AvailabilityRepo.FindCustomHours(ctx, professionalID, date)
	if err != nil {
		return models.DaySchedule{}, &DataAccessError{Op: "find custom hours", Err: err}
	}
	if custom != nil && custom.HasCustomHours() {
		return models.DaySchedule{Window: models.TimeWindow{Start: custom.Start, End: custom.End}}, nil
	}

	return models.DaySchedule{Window: e.DefaultWindow}, nil
}
