// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"time"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository is the source of truth for slot open/closed state.
// Slots live embedded in the doctor's user document; this repository only
// reads them and flips isBooked.
type AvailabilityRepository interface {
	// FindOpenSlot returns the doctor profile only if it contains a slot at
	// slotTime with isBooked=false. A missing doctor, a missing slot and an
	// already-booked slot all return mongo.ErrNoDocuments.
	FindOpenSlot(ctx context.Context, doctorID string, slotTime time.Time) (*models.User, error)

	// ClaimSlot atomically flips the matching slot to booked, but only if it
	// was still open. Returns whether this caller won the flip.
	ClaimSlot(ctx context.Context, doctorID string, slotTime time.Time) (bool, error)

	// ReleaseSlot re-opens a claimed slot. Used as compensation when the
	// appointment insert loses the uniqueness race.
	ReleaseSlot(ctx context.Context, doctorID string, slotTime time.Time) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs an AvailabilityRepository over the
// users collection.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("users"),
	}
}
