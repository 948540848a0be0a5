package schedule

import "serenite/models"

// conflicts reports whether the half-open candidate interval [start, end)
// intersects the booking's [b.Start, b.End). Back-to-back intervals sharing an
// edge do not conflict.
func conflicts(start, end int, b models.Booking) bool {
	return start < b.End && b.Start < end
}

// filterFree keeps only candidate starts whose interval overlaps none of the
// bookings. Bookings are expected to be pre-filtered to active statuses.
func filterFree(starts []int, duration int, bookings []models.Booking) []int {
	var free []int
	for _, t := range starts {
		clear := true
		for _, b := range bookings {
			if conflicts(t, t+duration, b) {
				clear = false
				break
			}
		}
		if clear {
			free = append(free, t)
		}
	}
	return free
}
