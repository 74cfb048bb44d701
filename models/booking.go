package models

import "time"

// Booking statuses. Transitions are monotonic (pending → paid → confirmed)
// except cancellation, which is allowed from any non-terminal state.
const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Cancellation attribution values.
const (
	CancelledByBuyer    = "buyer"
	CancelledByPartner  = "partner"
	CancelledByPlatform = "platform"
)

// Booking represents one confirmed reservation or purchase. Exactly one
// Booking exists per idempotency key; the amount is set once from the
// authoritative payment record and never rewritten by this service.
type Booking struct {
	ID              string     `bson:"id" json:"id"`                                             // Unique booking identifier (UUID)
	BuyerID         string     `bson:"buyer_id" json:"buyerId"`                                  // Member who bought
	OfferID         string     `bson:"offer_id" json:"offerId"`                                  // Catalog offer purchased
	VariantID       string     `bson:"variant_id,omitempty" json:"variantId,omitempty"`          // Optional offer variant
	PartnerID       string     `bson:"partner_id" json:"partnerId"`                              // Partner delivering the offer
	IdempotencyKey  string     `bson:"idempotency_key" json:"idempotencyKey"`                    // Upstream payment/session reference, unique
	Amount          float64    `bson:"amount" json:"amount"`                                     // Amount actually charged
	Currency        string     `bson:"currency" json:"currency"`                                 // ISO currency code, e.g. "eur"
	Status          string     `bson:"status" json:"status"`                                     // pending|paid|confirmed|cancelled
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`                              // Timestamp of the first write
	ScheduledAt     *time.Time `bson:"scheduled_at,omitempty" json:"scheduledAt,omitempty"`      // Agreed appointment time, if any
	MeetingLocation string     `bson:"meeting_location,omitempty" json:"meetingLocation,omitempty"` // Free-text meeting place
	CancelledBy     string     `bson:"cancelled_by,omitempty" json:"cancelledBy,omitempty"`      // Who cancelled, if cancelled
}

// Cancellable reports whether a booking in the given status may still be
// cancelled. Cancelled is the only terminal state.
func Cancellable(status string) bool {
	return status == BookingStatusPending ||
		status == BookingStatusPaid ||
		status == BookingStatusConfirmed
}
