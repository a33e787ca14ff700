// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"time"

	"campuscare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the appointment indexes. The partial unique index on
// (doctorId, slotDateTime) is the storage-level guard against two live
// appointments occupying one slot; cancelled appointments fall outside the
// filter so a freed slot can be rebooked.
func (r *mongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("appointment_id_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "slotDateTime", Value: 1},
			},
			Options: options.Index().
				SetName("doctor_slot_unique_live").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
				}),
		},
		{
			Keys: bson.D{
				{Key: "studentId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("student_created_desc"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
