package models

// ReminderPayload is the queued payload for an appointment reminder task.
type ReminderPayload struct {
	BookingID      string `json:"bookingId"`
	ClientID       string `json:"clientId"`
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"`       // "YYYY-MM-DD"
	StartClock     string `json:"startClock"` // "HH:MM"
	Service        string `json:"service"`
}
