// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"campuscare/models"
)

// BookingService orchestrates the booking and status-update workflows.
type BookingService interface {
	// Book places a pending appointment on the doctor's slot and notifies the
	// doctor best-effort. Fails with ErrMissingFields, ErrSlotUnavailable or
	// ErrSlotTaken before any state is left modified.
	Book(ctx context.Context, studentID, doctorID string, slotTime time.Time) (*models.Appointment, error)

	// UpdateStatus sets an appointment to confirmed or cancelled and notifies
	// the student best-effort.
	UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error)

	// ListForStudent returns the student's appointments with doctor details
	// joined in, optionally filtered by status.
	ListForStudent(ctx context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error)
}
