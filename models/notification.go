package models

import "time"

// Notification is a partner-facing in-app record created by the fan-out step.
// It is only ever mutated by a read acknowledgment.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	PartnerID string         `bson:"partner_id" json:"partnerId"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}

// Notification type tags.
const (
	NotificationTypeBooking = "new_booking"
)
