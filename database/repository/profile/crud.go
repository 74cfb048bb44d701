package profileRepo

import (
	"context"

	"nowme/database"
	"nowme/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo returns a ProfileRepository backed by MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	return &mongoProfileRepo{
		coll: database.DB().Collection("profiles"),
	}
}

// GetByID returns a buyer profile by its ID.
func (r *mongoProfileRepo) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
