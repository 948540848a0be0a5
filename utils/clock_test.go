package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{540, "09:00"},
		{970, "16:10"},
		{1020, "17:00"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinutesToClock(tt.minutes))
	}
}

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"16:10", 970, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
		{"09:00:00", 0, true},
	}
	for _, tt := range tests {
		got, err := ClockToMinutes(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m += 7 {
		got, err := ClockToMinutes(MinutesToClock(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}
