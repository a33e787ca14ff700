// File: database/repository/appointment/appointment_mongo.go
package appointmentRepo

import (
	"context"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateAppointment
		}
		return err
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) FindByDoctorAndTime(ctx context.Context, doctorID string, slotTime time.Time) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"doctorId":     doctorID,
		"slotDateTime": slotTime,
		"status":       bson.M{"$ne": models.StatusCancelled},
	}
	var appt models.Appointment
	if err := r.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
