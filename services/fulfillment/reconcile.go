package fulfillment

import (
	"context"

	"nowme/models"

	"go.uber.org/zap"
)

// reconcile locates or creates the single booking for an event. The webhook
// path and the client fallback path both land here and may race; whichever
// write reaches storage first wins outright. An already-reconciled booking
// is returned unchanged, never merged with the later candidate.
// The created flag reports whether this invocation performed the write; only
// the creating invocation goes on to fan out notifications, which is what
// keeps a doubly-delivered event at one buyer email.
func (s *DefaultFulfillmentService) reconcile(ctx context.Context, ev models.FulfillmentEvent) (*models.Booking, bool, error) {
	existing, err := s.BookingRepo.GetByIdempotencyKey(ctx, ev.IdempotencyKey)
	if err != nil {
		return nil, false, &PersistenceError{Op: "booking lookup", Err: err}
	}
	if existing != nil {
		s.Logger.Info("booking already reconciled",
			zap.String("idempotencyKey", ev.IdempotencyKey),
			zap.String("bookingId", existing.ID),
		)
		return existing, false, nil
	}

	candidate := candidateBooking(ev)
	booking, created, err := s.BookingRepo.InsertIgnoreDuplicate(ctx, &candidate)
	if err != nil {
		return nil, false, &PersistenceError{Op: "booking insert", Err: err}
	}

	if created {
		s.Logger.Info("booking created",
			zap.String("idempotencyKey", ev.IdempotencyKey),
			zap.String("bookingId", booking.ID),
		)
	} else {
		s.Logger.Info("booking insert lost the reconciliation race, using winner",
			zap.String("idempotencyKey", ev.IdempotencyKey),
			zap.String("bookingId", booking.ID),
		)
	}
	return booking, created, nil
}
