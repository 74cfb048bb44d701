package fulfillment

import "nowme/models"

// AuthoritativeAmount computes the single amount every downstream artifact
// shows for a booking. Priority, first hit wins:
//
//  1. the amount actually captured on the booking (ground truth from the
//     payment event),
//  2. the variant's configured price,
//  3. zero.
//
// The catalog list price is deliberately absent: it is a default for display,
// not a record of what was charged.
func AuthoritativeAmount(b models.Booking, variant *models.OfferVariant) float64 {
	if b.Amount > 0 {
		return b.Amount
	}
	if variant != nil && variant.Price != nil {
		return *variant.Price
	}
	return 0
}
