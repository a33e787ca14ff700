package models

import "time"

// Notification event types pushed over the realtime channel. The event names
// double as the websocket event field so the frontend can route them.
const (
	EventNewAppointment    = "newAppointment"
	EventAppointmentUpdate = "appointmentUpdate"
)

// Notification is the persisted copy of a realtime push, kept so recipients
// who were offline still find it on their next fetch.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipientId" json:"recipientId"`
	Type        string    `bson:"type" json:"type"`
	Message     string    `bson:"message" json:"message"`
	Payload     any       `bson:"payload,omitempty" json:"payload,omitempty"`
	IsRead      bool      `bson:"isRead" json:"isRead"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
