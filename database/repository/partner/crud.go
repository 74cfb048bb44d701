package partnerRepo

import (
	"context"
	"encoding/json"

	"nowme/database"
	"nowme/models"
	"nowme/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPartnerRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoPartnerRepo returns a PartnerRepository backed by MongoDB with a
// Redis read-through cache.
func NewMongoPartnerRepo() PartnerRepository {
	return &mongoPartnerRepo{
		coll:  database.DB().Collection("partners"),
		cache: utils.GetCacheClient(),
	}
}

// GetByID returns a partner's billing identity, preferring the cache.
func (r *mongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	key := utils.PartnerCachePrefix + id
	if data, err := r.cache.Get(ctx, key).Result(); err == nil {
		var p models.Partner
		if err := json.Unmarshal([]byte(data), &p); err == nil {
			return &p, nil
		}
	}

	var p models.Partner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		r.cache.Set(ctx, key, data, utils.CatalogCacheTTL)
	}
	return &p, nil
}
