package fulfillment

import (
	"context"
	"errors"
	"testing"
	"time"

	"nowme/models"

	"go.uber.org/zap"
)

func reconcileService(repo *fakeBookingRepo) *DefaultFulfillmentService {
	return &DefaultFulfillmentService{
		BookingRepo: repo,
		Logger:      zap.NewNop(),
	}
}

func TestReconcile_CreatesBookingOnFirstDelivery(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := reconcileService(repo)

	ev := models.FulfillmentEvent{
		IdempotencyKey: "evt_first",
		OfferID:        "offer-1",
		BuyerID:        "buyer-1",
		PartnerID:      "partner-1",
		CapturedAmount: 42,
		Currency:       "eur",
	}

	booking, created, err := svc.reconcile(context.Background(), ev)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !created {
		t.Fatal("expected first delivery to create the booking")
	}
	if booking.Status != models.BookingStatusPaid {
		t.Errorf("status = %q, want %q", booking.Status, models.BookingStatusPaid)
	}
	if booking.Amount != 42 {
		t.Errorf("amount = %v, want 42", booking.Amount)
	}
	if booking.ID == "" {
		t.Error("expected repository to assign an id")
	}
}

func TestReconcile_ZeroAmountStaysPending(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := reconcileService(repo)

	booking, _, err := svc.reconcile(context.Background(), models.FulfillmentEvent{
		IdempotencyKey: "evt_free",
		OfferID:        "offer-1",
	})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("status = %q, want %q", booking.Status, models.BookingStatusPending)
	}
}

func TestReconcile_RedeliveryReturnsWinnerUnchanged(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := reconcileService(repo)
	ctx := context.Background()

	first := models.FulfillmentEvent{
		IdempotencyKey: "evt_race",
		OfferID:        "offer-1",
		CapturedAmount: 59,
	}
	winner, created, err := svc.reconcile(ctx, first)
	if err != nil || !created {
		t.Fatalf("first reconcile: created=%v err=%v", created, err)
	}

	// The redelivered event carries a different amount; the winner must not
	// absorb it.
	second := first
	second.CapturedAmount = 99
	got, created, err := svc.reconcile(ctx, second)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if created {
		t.Fatal("redelivery must not create a second booking")
	}
	if got.ID != winner.ID {
		t.Errorf("redelivery returned booking %q, want winner %q", got.ID, winner.ID)
	}
	if got.Amount != 59 {
		t.Errorf("winner amount mutated to %v, want 59", got.Amount)
	}
	if repo.inserted != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserted)
	}
}

func TestReconcile_RaceLoserGetsWinnerRow(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byKey["evt_lost"] = &models.Booking{
		ID:             "winner-id",
		IdempotencyKey: "evt_lost",
		Status:         models.BookingStatusPaid,
		Amount:         30,
		CreatedAt:      time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
	// The narrow window where the lookup misses but the insert conflicts:
	// the other path committed between our read and our write.
	repo.missNextLookup = true
	svc := reconcileService(repo)

	booking, created, err := svc.reconcile(context.Background(), models.FulfillmentEvent{
		IdempotencyKey: "evt_lost",
		OfferID:        "offer-1",
	})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if created {
		t.Error("conflicting insert must report created=false")
	}
	if booking.ID != "winner-id" {
		t.Errorf("got booking %q, want winner-id", booking.ID)
	}
}

func TestReconcile_LookupFailureIsPersistenceError(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.lookupErr = errors.New("connection reset")
	svc := reconcileService(repo)

	_, _, err := svc.reconcile(context.Background(), models.FulfillmentEvent{
		IdempotencyKey: "evt_down",
		OfferID:        "offer-1",
	})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want PersistenceError", err)
	}
	if pe.Op != "booking lookup" {
		t.Errorf("op = %q, want booking lookup", pe.Op)
	}
}

func TestReconcile_InsertFailureIsPersistenceError(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.insertErr = errors.New("write concern timeout")
	svc := reconcileService(repo)

	_, _, err := svc.reconcile(context.Background(), models.FulfillmentEvent{
		IdempotencyKey: "evt_down",
		OfferID:        "offer-1",
	})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want PersistenceError", err)
	}
	if pe.Op != "booking insert" {
		t.Errorf("op = %q, want booking insert", pe.Op)
	}
}
