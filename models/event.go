package models

import "time"

// FulfillmentEvent is the typed entry point of the fulfillment pipeline.
// Both the Stripe webhook path and the client fallback path normalize into
// this shape before anything else runs; anything that fails validation is
// rejected at the boundary rather than null-checked deep in the pipeline.
type FulfillmentEvent struct {
	IdempotencyKey  string     `json:"idempotencyKey"` // Upstream payment/session reference
	OfferID         string     `json:"offerId"`
	BuyerID         string     `json:"buyerId"`
	PartnerID       string     `json:"partnerId"`
	VariantID       string     `json:"variantId,omitempty"`
	CapturedAmount  float64    `json:"capturedAmount"` // Amount captured upstream; 0 when unknown
	Currency        string     `json:"currency"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
	MeetingLocation string     `json:"meetingLocation,omitempty"`
}

// DeadLetterPayload is what the governor retains when a pipeline failure is
// absorbed instead of propagated. It must carry enough context for manual
// follow-up, since the invoking delivery system was told everything is fine.
type DeadLetterPayload struct {
	IdempotencyKey string           `json:"idempotencyKey"`
	Event          FulfillmentEvent `json:"event"`
	Reason         string           `json:"reason"`
	FailedAt       time.Time        `json:"failedAt"`
}

// ReminderPayload is the asynq task payload for booking reminder emails.
type ReminderPayload struct {
	BookingID       string    `json:"bookingId"`
	BuyerEmail      string    `json:"buyerEmail"`
	BuyerName       string    `json:"buyerName"`
	OfferTitle      string    `json:"offerTitle"`
	DateDisplay     string    `json:"dateDisplay"`
	LocationDisplay string    `json:"locationDisplay"`
	FireDate        time.Time `json:"fireDate"`
}
