// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "campuscare/database/repository/appointment"
	availabilityRepo "campuscare/database/repository/availability"
	"campuscare/models"
	"campuscare/services/notification"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking coordinator.
type DefaultBookingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Logger       *zap.Logger
}

// Book runs the booking workflow: validate the slot is open, claim it
// atomically, persist the appointment, then push to the doctor. The claim
// happens before the insert so a failure in between leaves the slot closed
// rather than double-bookable.
func (s *DefaultBookingService) Book(ctx context.Context, studentID, doctorID string, slotTime time.Time) (*models.Appointment, error) {
	if studentID == "" || doctorID == "" || slotTime.IsZero() {
		return nil, ErrMissingFields
	}

	// Availability check. Missing doctor, missing slot and already-booked
	// slot are indistinguishable here.
	if _, err := s.Availability.FindOpenSlot(ctx, doctorID, slotTime); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("availability lookup failed: %w", err)
	}

	// Duplicate-appointment check before any write.
	if _, err := s.Appointments.FindByDoctorAndTime(ctx, doctorID, slotTime); err == nil {
		return nil, ErrSlotTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("appointment lookup failed: %w", err)
	}

	// Atomic claim: only one concurrent booking can flip the slot.
	claimed, err := s.Availability.ClaimSlot(ctx, doctorID, slotTime)
	if err != nil {
		return nil, fmt.Errorf("slot claim failed: %w", err)
	}
	if !claimed {
		return nil, ErrSlotUnavailable
	}

	appt := &models.Appointment{
		StudentID:    studentID,
		DoctorID:     doctorID,
		SlotDateTime: slotTime,
		Status:       models.StatusPending,
	}
	if err := s.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateAppointment) {
			// Lost the uniqueness race after winning the claim; hand the
			// slot back to whoever actually holds the appointment.
			if relErr := s.Availability.ReleaseSlot(ctx, doctorID, slotTime); relErr != nil {
				s.Logger.Warn("booking: slot release after duplicate failed",
					zap.String("doctorId", doctorID),
					zap.Time("slotDateTime", slotTime),
					zap.Error(relErr),
				)
			}
			return nil, ErrSlotTaken
		}
		// Unknown persistence failure: the slot stays claimed. Biased toward
		// unavailability over double-booking.
		return nil, fmt.Errorf("appointment insert failed: %w", err)
	}

	s.Notifier.NotifyNewAppointment(ctx, doctorID, appt)

	s.Logger.Info("booking: appointment created",
		zap.String("appointmentId", appt.ID),
		zap.String("studentId", studentID),
		zap.String("doctorId", doctorID),
		zap.Time("slotDateTime", slotTime),
	)
	return appt, nil
}

// UpdateStatus confirms or cancels an appointment and pushes the outcome to
// the student. Arbitrary status strings are rejected.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error) {
	if status != models.StatusConfirmed && status != models.StatusCancelled {
		return nil, ErrInvalidStatus
	}

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("appointment lookup failed: %w", err)
	}

	if err := s.Appointments.UpdateStatus(ctx, appointmentID, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("status update failed: %w", err)
	}
	appt.Status = status

	s.Notifier.NotifyStatusChange(ctx, appt.StudentID, appt, status)

	s.Logger.Info("booking: status updated",
		zap.String("appointmentId", appointmentID),
		zap.String("status", status),
	)
	return appt, nil
}

// ListForStudent returns the student's appointments with doctor details.
func (s *DefaultBookingService) ListForStudent(ctx context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error) {
	appts, err := s.Appointments.ListByStudent(ctx, studentID, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("appointment listing failed: %w", err)
	}
	return appts, nil
}
