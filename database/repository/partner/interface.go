package partnerRepo

import (
	"context"

	"nowme/models"
)

// PartnerRepository reads partner billing and contact records. Owned by the
// partner directory; read-only to the fulfillment core.
type PartnerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Partner, error)
}
