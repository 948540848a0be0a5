package notification

import (
	"context"

	"serenite/utils"

	"go.uber.org/zap"
)

// LogNotifier records reminders in the application log. It stands in for the
// external email/SMS gateway in development and tests.
type LogNotifier struct{}

func (LogNotifier) SendAppointmentReminder(ctx context.Context, clientID, title, body string) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("clientID", clientID),
		zap.String("title", title),
		zap.String("body", body))
	return nil
}
