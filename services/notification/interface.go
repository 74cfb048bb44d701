package notification

import (
	"context"
	"errors"

	"nowme/models"
)

// ErrQuotaExceeded marks transport failures caused by provider rate limits
// or quota exhaustion. The delivery governor treats these as
// non-retryable-for-now: retrying against a spent quota only digs the hole
// deeper.
var ErrQuotaExceeded = errors.New("email transport quota exceeded")

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Email is one outgoing transactional message.
type Email struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer abstracts the transactional email transport so the fan-out is
// testable and transport failures are classifiable.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// BookingNotice bundles the resolved facts the fan-out needs to compose both
// the buyer confirmation and the partner alert.
type BookingNotice struct {
	Booking         models.Booking
	Buyer           models.UserProfile
	BuyerEmail      string // empty when no usable address could be resolved
	Offer           models.Offer
	Variant         *models.OfferVariant
	Partner         models.Partner
	Amount          float64
	DateDisplay     string
	LocationDisplay string
	MeetingURL      string
	Invoice         []byte
}

// NotificationService fans a fulfilled booking out to buyer and partner.
type NotificationService interface {
	// NotifyBooking sends at most one buyer email, at most one partner email
	// and persists at most one in-app notification. The buyer branch error is
	// returned for classification; partner-branch failures are logged and
	// absorbed, never propagated.
	NotifyBooking(ctx context.Context, notice BookingNotice) (models.FanoutResult, error)
}
