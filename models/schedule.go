package models

// TimeWindow is a half-open [Start, End) interval in minutes from midnight.
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the window length in minutes.
func (w TimeWindow) Duration() int {
	return w.End - w.Start
}

// DaySchedule is the resolved working state of one professional on one date.
type DaySchedule struct {
	Blocked bool       `json:"blocked"`
	Reason  string     `json:"reason,omitempty"` // set when Blocked
	Window  TimeWindow `json:"window"`           // meaningful only when not Blocked
}

// DayAvailability is the engine output for one professional/date/duration query.
type DayAvailability struct {
	Date    string   `json:"date"`
	Blocked bool     `json:"isBlocked"`
	Reason  string   `json:"reason,omitempty"`
	Slots   []string `json:"slots"` // ascending, zero-padded "HH:MM" start times
}
