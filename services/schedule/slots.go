package schedule

import "serenite/models"

// candidateStarts enumerates every step-aligned start time within the window
// that can fit a service of the given duration. Starts are offsets of step
// from window.Start; a duration longer than the window yields an empty slice,
// not an error.
func candidateStarts(window models.TimeWindow, duration, step int) []int {
	var starts []int
	for t := window.Start; t+duration <= window.End; t += step {
		starts = append(starts, t)
	}
	return starts
}
