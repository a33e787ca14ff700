// File: services/notification/service.go
package notification

import (
	"context"
	"fmt"

	notificationRepo "campuscare/database/repository/notification"
	"campuscare/models"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo    notificationRepo.NotificationRepository
	Channel Channel
	Logger  *zap.Logger
}

// NotifyNewAppointment tells the doctor a student has requested a slot.
func (s *DefaultNotificationService) NotifyNewAppointment(ctx context.Context, doctorID string, appt *models.Appointment) {
	s.dispatch(ctx, doctorID, models.EventNewAppointment,
		"📅 You have a new appointment request!", appt)
}

// NotifyStatusChange tells the student their appointment was confirmed or
// cancelled.
func (s *DefaultNotificationService) NotifyStatusChange(ctx context.Context, studentID string, appt *models.Appointment, status string) {
	s.dispatch(ctx, studentID, models.EventAppointmentUpdate,
		fmt.Sprintf("Your appointment has been %s", status), appt)
}

// dispatch persists the notification, then pushes it if the recipient holds a
// live connection. An offline recipient is not an error.
func (s *DefaultNotificationService) dispatch(ctx context.Context, recipientID, event, message string, appt *models.Appointment) {
	n := &models.Notification{
		RecipientID: recipientID,
		Type:        event,
		Message:     message,
		Payload:     appt,
	}
	if err := s.Repo.Insert(ctx, n); err != nil {
		s.Logger.Warn("notification: persist failed",
			zap.String("recipientId", recipientID),
			zap.String("event", event),
			zap.Error(err),
		)
	}

	if !s.Channel.HasActiveConnection(recipientID) {
		s.Logger.Debug("notification: recipient offline",
			zap.String("recipientId", recipientID),
			zap.String("event", event),
		)
		return
	}

	delivered := s.Channel.TrySend(recipientID, event, pushPayload(message, appt))
	s.Logger.Debug("notification: push attempted",
		zap.String("recipientId", recipientID),
		zap.String("event", event),
		zap.Bool("delivered", delivered),
	)
}

// pushPayload builds the push payload shape the frontend expects.
func pushPayload(message string, appt *models.Appointment) map[string]any {
	return map[string]any{
		"message":     message,
		"appointment": appt,
	}
}
