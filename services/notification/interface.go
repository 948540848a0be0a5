package notification

import "context"

// Notifier delivers appointment reminders to clients. Actual delivery
// (email, SMS) happens in an external service; implementations here only
// hand the message off.
type Notifier interface {
	SendAppointmentReminder(ctx context.Context, clientID, title, body string) error
}
