package models

import "time"

// Appointment lifecycle statuses. New appointments start out pending and are
// confirmed or cancelled by the doctor.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment is a student's claim on one of a doctor's slots.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	StudentID    string    `bson:"studentId" json:"studentId"`
	DoctorID     string    `bson:"doctorId" json:"doctorId"`
	SlotDateTime time.Time `bson:"slotDateTime" json:"slotDateTime"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DoctorInfo is the subset of a doctor's profile joined into listings.
type DoctorInfo struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Email          string `bson:"email" json:"email"`
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`
}

// AppointmentWithDoctor is an appointment with its doctor's details attached,
// as returned by the student listing.
type AppointmentWithDoctor struct {
	Appointment `bson:",inline"`
	Doctor      DoctorInfo `bson:"doctor" json:"doctor"`
}

// BookAppointmentRequest is the booking payload.
type BookAppointmentRequest struct {
	DoctorID     string    `json:"doctorId" binding:"required"`
	SlotDateTime time.Time `json:"slotDateTime" binding:"required"`
}

// UpdateStatusRequest is the status-update payload.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
