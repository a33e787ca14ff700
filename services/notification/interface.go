// File: services/notification/interface.go
package notification

import (
	"context"

	"campuscare/models"
)

// Channel is the realtime delivery capability the notifier consumes. The
// notifier only reads the connection table; connect/disconnect lifecycle
// belongs to the channel itself.
type Channel interface {
	HasActiveConnection(userID string) bool
	TrySend(userID, event string, payload any) bool
}

// NotificationService composes, persists and pushes the notifications the
// booking workflow emits. Everything here is best-effort: failures are
// logged and swallowed, never surfaced to the workflow.
type NotificationService interface {
	NotifyNewAppointment(ctx context.Context, doctorID string, appt *models.Appointment)
	NotifyStatusChange(ctx context.Context, studentID string, appt *models.Appointment, status string)
}
