package catalogRepo

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

type mongoCatalogRepo struct {
	offers   *mongo.Collection
	variants *mongo.Collection
	cache    *redis.Client
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB with a
// Redis read-through cache. Catalog rows are hot on every webhook delivery
// and change rarely, so a short TTL is safe.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		offers:   db.Collection("offers"),
		variants: db.Collection("offer_variants"),
		cache:    utils.GetCacheClient(),
	}
}

// GetOfferByID returns an offer, preferring the cache.
func (r *mongoCatalogRepo) GetOfferByID(ctx context.Context, id string) (*models.Offer, error) {
	key := utils.CatalogCachePrefix + "offer:" + id
	if data, err := r.cache.Get(ctx, key).Result(); err == nil {
		var o models.Offer
		if err := json.Unmarshal([]byte(data), &o); err == nil {
			return &o, nil
		}
	}

	var o models.Offer
	if err := r.offers.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(o); err == nil {
		r.cache.Set(ctx, key, data, utils.CatalogCacheTTL)
	}
	return &o, nil
}

// GetVariantByID returns an offer variant, preferring the cache.
func (r *mongoCatalogRepo) GetVariantByID(ctx context.Context, id string) (*models.OfferVariant, error) {
	key := utils.CatalogCachePrefix + "variant:" + id
	if data, err := r.cache.Get(ctx, key).Result(); err == nil {
		var v models.OfferVariant
		if err := json.Unmarshal([]byte(data), &v); err == nil {
			return &v, nil
		}
	}

	var v models.OfferVariant
	if err := r.variants.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(v); err == nil {
		r.cache.Set(ctx, key, data, utils.CatalogCacheTTL)
	}
	return &v, nil
}
