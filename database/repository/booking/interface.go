package bookingRepo

import (
	"context"

	"nowme/models"
)

// BookingRepository is the persistence surface the fulfillment pipeline needs.
// GetByIdempotencyKey returns (nil, nil) when no booking exists for the key.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error)

	// InsertIgnoreDuplicate inserts the candidate booking unless one already
	// exists for its idempotency key. It returns the winning row and whether
	// this call created it. A duplicate-key conflict is the expected outcome
	// of the webhook/client-fallback race and is never an error.
	InsertIgnoreDuplicate(ctx context.Context, candidate *models.Booking) (*models.Booking, bool, error)

	// Cancel moves a non-terminal booking to cancelled with attribution.
	Cancel(ctx context.Context, id, cancelledBy string) error
}
