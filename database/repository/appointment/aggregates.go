// File: database/repository/appointment/aggregates.go
package appointmentRepo

import (
	"context"
	"time"

	"campuscare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListByStudent returns the student's appointments newest first, each joined
// with the doctor's public profile fields.
func (r *mongoAppointmentRepo) ListByStudent(ctx context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{"studentId": studentID}
	if statusFilter != "" {
		match["status"] = statusFilter
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "doctorId",
			"foreignField": "id",
			"as":           "doctor",
		}},
		{"$unwind": bson.M{
			"path":                       "$doctor",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$project": bson.M{
			"_id":          0,
			"id":           1,
			"studentId":    1,
			"doctorId":     1,
			"slotDateTime": 1,
			"status":       1,
			"createdAt":    1,
			"updatedAt":    1,
			"doctor": bson.M{
				"id":             "$doctor.id",
				"name":           "$doctor.name",
				"email":          "$doctor.email",
				"specialization": "$doctor.specialization",
			},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.AppointmentWithDoctor
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
