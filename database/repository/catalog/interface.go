package catalogRepo

import (
	"context"

	"nowme/models"
)

// CatalogRepository reads offers and variants. The catalog is owned by
// catalog management and is read-only to the fulfillment core.
type CatalogRepository interface {
	GetOfferByID(ctx context.Context, id string) (*models.Offer, error)
	GetVariantByID(ctx context.Context, id string) (*models.OfferVariant, error)
}
