package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nowme/database"
	"nowme/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByIdempotencyKey returns the booking for an upstream payment reference,
// or (nil, nil) when none exists yet.
func (r *mongoBookingRepo) GetByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error) {
	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// InsertIgnoreDuplicate inserts the candidate unless a booking already holds
// its idempotency key. The unique index on idempotency_key arbitrates the
// race between the webhook path and the client fallback path: the loser gets
// a duplicate-key error and simply reads back the winner's row.
func (r *mongoBookingRepo) InsertIgnoreDuplicate(ctx context.Context, candidate *models.Booking) (*models.Booking, bool, error) {
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, candidate)
	if err == nil {
		return candidate, true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return nil, false, err
	}

	existing, ferr := r.GetByIdempotencyKey(ctx, candidate.IdempotencyKey)
	if ferr != nil {
		return nil, false, ferr
	}
	if existing == nil {
		// Duplicate error but no visible winner: raced with a rollback.
		return nil, false, fmt.Errorf("duplicate insert for key %s but no winner found", candidate.IdempotencyKey)
	}
	return existing, false, nil
}

// Cancel marks a non-terminal booking cancelled. A booking already cancelled
// stays untouched; cancellation is the only non-monotonic transition allowed.
func (r *mongoBookingRepo) Cancel(ctx context.Context, id, cancelledBy string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": bson.M{"$ne": models.BookingStatusCancelled}},
		bson.M{"$set": bson.M{
			"status":       models.BookingStatusCancelled,
			"cancelled_by": cancelledBy,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found or already cancelled")
	}
	return nil
}
