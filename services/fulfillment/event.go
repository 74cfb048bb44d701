package fulfillment

import (
	"nowme/models"
)

// ValidateEvent enforces the minimum an event must carry to be fulfillable.
// A booking without an idempotency key cannot be deduplicated and must never
// be created, so missing key fields fail hard instead of being defaulted.
func ValidateEvent(ev models.FulfillmentEvent) error {
	if ev.IdempotencyKey == "" {
		return &InvalidEventError{Reason: "missing idempotency key"}
	}
	if ev.OfferID == "" {
		return &InvalidEventError{Reason: "missing offer id"}
	}
	return nil
}

// candidateBooking builds the booking row this event would create if it wins
// the reconciliation race. The id and creation timestamp are filled in by
// the repository on insert.
func candidateBooking(ev models.FulfillmentEvent) models.Booking {
	status := models.BookingStatusPending
	if ev.CapturedAmount > 0 {
		status = models.BookingStatusPaid
	}
	return models.Booking{
		BuyerID:         ev.BuyerID,
		OfferID:         ev.OfferID,
		VariantID:       ev.VariantID,
		PartnerID:       ev.PartnerID,
		IdempotencyKey:  ev.IdempotencyKey,
		Amount:          ev.CapturedAmount,
		Currency:        ev.Currency,
		Status:          status,
		ScheduledAt:     ev.ScheduledAt,
		MeetingLocation: ev.MeetingLocation,
	}
}
