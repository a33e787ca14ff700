// File: database/repository/notification/notification_mongo.go
package notificationRepo

import (
	"context"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
)

const opTimeout = 5 * time.Second

func (r *mongoNotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, n)
	return err
}
