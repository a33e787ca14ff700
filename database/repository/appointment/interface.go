// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateAppointment reports that an appointment for the same
// (doctor, slot) pair already exists.
var ErrDuplicateAppointment = errors.New("appointment already exists for this slot")

// AppointmentRepository persists appointment records.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// FindByDoctorAndTime returns any non-cancelled appointment occupying the
	// slot, or mongo.ErrNoDocuments.
	FindByDoctorAndTime(ctx context.Context, doctorID string, slotTime time.Time) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByStudent(ctx context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs an AppointmentRepository over the
// appointments collection.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
