package fulfillment

import (
	"context"
	"errors"
	"sync"
	"time"

	"nowme/models"

	"github.com/google/uuid"
)

// In-memory fakes mirroring the repository contracts. The booking fake
// serializes inserts with a mutex the way the unique index serializes them
// in Mongo, which is what makes the race tests meaningful.

type fakeBookingRepo struct {
	mu        sync.Mutex
	byKey     map[string]*models.Booking
	lookupErr error
	insertErr error
	inserted  int

	// missNextLookup makes the next GetByIdempotencyKey report no row even
	// when one exists, reproducing the lookup-miss-then-insert-conflict
	// window of the reconciliation race.
	missNextLookup bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byKey: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.byKey {
		if b.ID == id {
			copy := *b
			return &copy, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBookingRepo) GetByIdempotencyKey(_ context.Context, key string) (*models.Booking, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missNextLookup {
		f.missNextLookup = false
		return nil, nil
	}
	if b, ok := f.byKey[key]; ok {
		copy := *b
		return &copy, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) InsertIgnoreDuplicate(_ context.Context, candidate *models.Booking) (*models.Booking, bool, error) {
	if f.insertErr != nil {
		return nil, false, f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byKey[candidate.IdempotencyKey]; ok {
		copy := *existing
		return &copy, false, nil
	}
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	}
	stored := *candidate
	f.byKey[candidate.IdempotencyKey] = &stored
	f.inserted++
	copy := stored
	return &copy, true, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id, cancelledBy string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.byKey {
		if b.ID == id && models.Cancellable(b.Status) {
			b.Status = models.BookingStatusCancelled
			b.CancelledBy = cancelledBy
			return nil
		}
	}
	return errors.New("booking not found or already cancelled")
}

type fakeCatalogRepo struct {
	offers   map[string]models.Offer
	variants map[string]models.OfferVariant
}

func (f *fakeCatalogRepo) GetOfferByID(_ context.Context, id string) (*models.Offer, error) {
	if o, ok := f.offers[id]; ok {
		return &o, nil
	}
	return nil, errors.New("offer not found")
}

func (f *fakeCatalogRepo) GetVariantByID(_ context.Context, id string) (*models.OfferVariant, error) {
	if v, ok := f.variants[id]; ok {
		return &v, nil
	}
	return nil, errors.New("variant not found")
}

type fakePartnerRepo struct {
	partners map[string]models.Partner
}

func (f *fakePartnerRepo) GetByID(_ context.Context, id string) (*models.Partner, error) {
	if p, ok := f.partners[id]; ok {
		return &p, nil
	}
	return nil, errors.New("partner not found")
}

type fakeProfileRepo struct {
	profiles map[string]models.UserProfile
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*models.UserProfile, error) {
	if p, ok := f.profiles[id]; ok {
		return &p, nil
	}
	return nil, errors.New("profile not found")
}

type fakeDirectory struct {
	emails map[string]string
	err    error
}

func (f *fakeDirectory) EmailByID(_ context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.emails[userID], nil
}

type fakeDeadLetterSink struct {
	mu       sync.Mutex
	payloads []models.DeadLetterPayload
	err      error
}

func (f *fakeDeadLetterSink) EnqueueDeadLetter(_ context.Context, p models.DeadLetterPayload) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, p)
	return nil
}

type fakeReminderScheduler struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
}

func (f *fakeReminderScheduler) ScheduleBookingReminder(_ context.Context, p models.ReminderPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, p)
	return nil
}
