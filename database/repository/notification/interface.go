// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository persists the notifications the booking workflow
// emits, so recipients who were offline still find them later.
type NotificationRepository interface {
	Insert(ctx context.Context, n *models.Notification) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a NotificationRepository over the
// notifications collection.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
