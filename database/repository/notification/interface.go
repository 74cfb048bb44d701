package notificationRepo

import (
	"context"

	"nowme/models"
)

// NotificationRepository persists partner-facing in-app notifications.
// Insert is called by the fan-out; the read side serves the partner feed.
type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) (string, error)
	ListByPartner(ctx context.Context, partnerID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
