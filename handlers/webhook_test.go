package handlers

import (
	"testing"
	"time"

	"github.com/stripe/stripe-go/v76"
)

func TestEventFromCheckoutSession(t *testing.T) {
	session := &stripe.CheckoutSession{
		ID:          "cs_test_a1b2",
		AmountTotal: 5900,
		Currency:    stripe.CurrencyEUR,
		Metadata: map[string]string{
			"offer_id":         "offer-1",
			"buyer_id":         "buyer-1",
			"partner_id":       "partner-1",
			"variant_id":       "variant-1",
			"meeting_location": "12 rue des Martyrs, 75009 Paris",
			"scheduled_at":     "2026-09-12T08:30:00Z",
		},
	}

	ev := eventFromCheckoutSession(session)
	if ev.IdempotencyKey != "cs_test_a1b2" {
		t.Errorf("idempotency key = %q, want the session id", ev.IdempotencyKey)
	}
	if ev.CapturedAmount != 59 {
		t.Errorf("captured amount = %v, want 59 (major units)", ev.CapturedAmount)
	}
	if ev.Currency != "eur" {
		t.Errorf("currency = %q, want eur", ev.Currency)
	}
	if ev.OfferID != "offer-1" || ev.BuyerID != "buyer-1" || ev.PartnerID != "partner-1" || ev.VariantID != "variant-1" {
		t.Errorf("metadata not mapped: %+v", ev)
	}
	if ev.MeetingLocation != "12 rue des Martyrs, 75009 Paris" {
		t.Errorf("meeting location = %q", ev.MeetingLocation)
	}
	want := time.Date(2026, 9, 12, 8, 30, 0, 0, time.UTC)
	if ev.ScheduledAt == nil || !ev.ScheduledAt.Equal(want) {
		t.Errorf("scheduled at = %v, want %v", ev.ScheduledAt, want)
	}
}

func TestEventFromCheckoutSession_Fallbacks(t *testing.T) {
	session := &stripe.CheckoutSession{
		ID:                "cs_test_min",
		ClientReferenceID: "buyer-ref",
		Metadata: map[string]string{
			"offer_id":     "offer-1",
			"scheduled_at": "not-a-date",
		},
	}

	ev := eventFromCheckoutSession(session)
	if ev.BuyerID != "buyer-ref" {
		t.Errorf("buyer id = %q, want the client reference fallback", ev.BuyerID)
	}
	if ev.ScheduledAt != nil {
		t.Errorf("scheduled at = %v, want nil for an unparseable value", ev.ScheduledAt)
	}
	if ev.CapturedAmount != 0 {
		t.Errorf("captured amount = %v, want 0", ev.CapturedAmount)
	}
}
