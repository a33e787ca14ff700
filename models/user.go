package models

import "time"

// Roles recognized by the auth middleware.
const (
	RoleStudent = "student"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// AvailableSlot is one bookable window embedded in a doctor's profile.
// Slot timestamps are unique per doctor; only the booking coordinator
// flips IsBooked.
type AvailableSlot struct {
	DateTime time.Time `bson:"dateTime" json:"dateTime"`
	IsBooked bool      `bson:"isBooked" json:"isBooked"`
}

// User represents any account. AvailableSlots is populated for doctors only.
type User struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Email          string          `bson:"email" json:"email"`
	Role           string          `bson:"role" json:"role"`
	Specialization string          `bson:"specialization,omitempty" json:"specialization,omitempty"`
	AvailableSlots []AvailableSlot `bson:"availableSlots,omitempty" json:"availableSlots,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}
