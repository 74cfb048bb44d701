package fulfillment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nowme/models"
	"nowme/services/notification"

	"go.uber.org/zap"
)

// Ack is what the pipeline tells the invoking at-least-once delivery system.
// Retry=true propagates a hard failure and triggers redelivery; Retry=false
// acknowledges the event as handled, suppressing redelivery even when
// something downstream went wrong.
type Ack struct {
	Retry  bool
	Status int
}

// DeadLetterSink retains absorbed failures for manual follow-up.
type DeadLetterSink interface {
	EnqueueDeadLetter(ctx context.Context, p models.DeadLetterPayload) error
}

// Governor decides, per failure, whether redelivery is worth anything.
// Only two classes are: invalid events (a corrected event can succeed) and
// genuine persistence faults (storage may recover). Everything else is
// absorbed so a single poison event cannot turn into a retry storm, but an
// absorbed failure must never be indistinguishable from true success: it
// always produces the audit log entry and a dead-letter record.
type Governor struct {
	Logger      *zap.Logger
	DeadLetters DeadLetterSink
}

// AuditMarker is the structured-log field value alerting is keyed on.
const AuditMarker = "fulfillment_failure_absorbed"

// Govern classifies err and returns the acknowledgment for the delivery
// system. A nil error acknowledges plain success.
func (g *Governor) Govern(ctx context.Context, ev models.FulfillmentEvent, err error) Ack {
	if err == nil {
		return Ack{Retry: false, Status: http.StatusOK}
	}

	var invalid *InvalidEventError
	if errors.As(err, &invalid) {
		g.Logger.Warn("fulfillment event rejected",
			zap.String("idempotencyKey", ev.IdempotencyKey),
			zap.String("reason", invalid.Reason),
		)
		return Ack{Retry: true, Status: http.StatusBadRequest}
	}

	var persistence *PersistenceError
	if errors.As(err, &persistence) {
		g.Logger.Error("fulfillment persistence failure, requesting redelivery",
			zap.String("idempotencyKey", ev.IdempotencyKey),
			zap.Error(err),
		)
		return Ack{Retry: true, Status: http.StatusInternalServerError}
	}

	reason := "unclassified failure"
	if errors.Is(err, notification.ErrQuotaExceeded) {
		// Redelivering against a spent quota clears nothing; it only burns
		// the remaining budget faster.
		reason = "transport quota exceeded"
	}

	g.absorb(ctx, ev, err, reason)
	return Ack{Retry: false, Status: http.StatusOK}
}

func (g *Governor) absorb(ctx context.Context, ev models.FulfillmentEvent, err error, reason string) {
	g.Logger.Error("fulfillment failure absorbed, redelivery suppressed",
		zap.String("audit", AuditMarker),
		zap.String("reason", reason),
		zap.String("idempotencyKey", ev.IdempotencyKey),
		zap.Error(err),
	)

	if g.DeadLetters == nil {
		return
	}
	payload := models.DeadLetterPayload{
		IdempotencyKey: ev.IdempotencyKey,
		Event:          ev,
		Reason:         reason + ": " + err.Error(),
		FailedAt:       time.Now().UTC(),
	}
	if dlErr := g.DeadLetters.EnqueueDeadLetter(ctx, payload); dlErr != nil {
		g.Logger.Error("dead-letter enqueue failed",
			zap.String("idempotencyKey", ev.IdempotencyKey),
			zap.Error(dlErr),
		)
	}
}
