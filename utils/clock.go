package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every minute-of-day value handled by the scheduler.
const MinutesPerDay = 24 * 60

// MinutesToClock formats minutes from midnight as a zero-padded "HH:MM" string.
// Zero-padding is load-bearing: clients sort and compare these strings.
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ClockToMinutes parses a "HH:MM" string into minutes from midnight.
func ClockToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in clock value %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}
