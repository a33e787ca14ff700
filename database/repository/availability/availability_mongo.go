// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"time"

	"campuscare/models"

	"go.mongodb.org/mongo-driver/bson"
)

const opTimeout = 5 * time.Second

func (r *mongoAvailabilityRepo) FindOpenSlot(ctx context.Context, doctorID string, slotTime time.Time) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"id":   doctorID,
		"role": models.RoleDoctor,
		"availableSlots": bson.M{
			"$elemMatch": bson.M{
				"dateTime": slotTime,
				"isBooked": false,
			},
		},
	}
	var doctor models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoAvailabilityRepo) ClaimSlot(ctx context.Context, doctorID string, slotTime time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Conditional update: the slot must still be open at write time, so two
	// concurrent claims cannot both match.
	filter := bson.M{
		"id": doctorID,
		"availableSlots": bson.M{
			"$elemMatch": bson.M{
				"dateTime": slotTime,
				"isBooked": false,
			},
		},
	}
	update := bson.M{"$set": bson.M{"availableSlots.$.isBooked": true}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *mongoAvailabilityRepo) ReleaseSlot(ctx context.Context, doctorID string, slotTime time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"id": doctorID,
		"availableSlots": bson.M{
			"$elemMatch": bson.M{
				"dateTime": slotTime,
				"isBooked": true,
			},
		},
	}
	update := bson.M{"$set": bson.M{"availableSlots.$.isBooked": false}}

	_, err := r.coll.UpdateOne(ctx, filter, update)
	return err
}
