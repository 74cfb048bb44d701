package fulfillment

import (
	"context"
	"sync"

	"nowme/models"

	"go.uber.org/zap"
)

// Resolved holds every record the invoice and the fan-out need, with
// placeholder fallbacks already applied. BuyerEmail is empty only when both
// the profile and the identity provider came up blank.
type Resolved struct {
	Buyer      models.UserProfile
	BuyerEmail string
	Offer      models.Offer
	Variant    *models.OfferVariant
	Partner    models.Partner
}

// resolveEntities gathers buyer, offer, variant and partner concurrently.
// Missing non-buyer records degrade to named placeholders instead of failing:
// an invoice with a placeholder title still has to go out, and the booking
// itself is already settled.
func (s *DefaultFulfillmentService) resolveEntities(ctx context.Context, b *models.Booking) *Resolved {
	res := &Resolved{
		Buyer:   models.UserProfile{ID: b.BuyerID},
		Offer:   models.Offer{ID: b.OfferID, PartnerID: b.PartnerID, Title: "Offer unavailable"},
		Partner: models.Partner{ID: b.PartnerID, LegalName: "Partner"},
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		profile, err := s.ProfileRepo.GetByID(ctx, b.BuyerID)
		if err != nil {
			s.Logger.Warn("buyer profile fetch failed",
				zap.String("buyerId", b.BuyerID), zap.Error(err))
			return
		}
		res.Buyer = *profile
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		offer, err := s.CatalogRepo.GetOfferByID(ctx, b.OfferID)
		if err != nil {
			s.Logger.Warn("offer fetch failed",
				zap.String("offerId", b.OfferID), zap.Error(err))
			return
		}
		res.Offer = *offer
	}()

	if b.VariantID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			variant, err := s.CatalogRepo.GetVariantByID(ctx, b.VariantID)
			if err != nil {
				s.Logger.Warn("variant fetch failed",
					zap.String("variantId", b.VariantID), zap.Error(err))
				return
			}
			res.Variant = variant
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		partner, err := s.PartnerRepo.GetByID(ctx, b.PartnerID)
		if err != nil {
			s.Logger.Warn("partner fetch failed",
				zap.String("partnerId", b.PartnerID), zap.Error(err))
			return
		}
		res.Partner = *partner
	}()

	wg.Wait()

	res.BuyerEmail = s.resolveBuyerEmail(ctx, b.BuyerID, res.Buyer.Email)
	return res
}

// resolveBuyerEmail prefers the profile email and falls back to the identity
// provider's own account record, which requires admin privilege. An empty
// result does not fail the pipeline; the fan-out refuses buyer delivery and
// logs the condition instead.
func (s *DefaultFulfillmentService) resolveBuyerEmail(ctx context.Context, buyerID, profileEmail string) string {
	if profileEmail != "" {
		return profileEmail
	}
	if buyerID == "" {
		return ""
	}

	email, err := s.Identity.EmailByID(ctx, buyerID)
	if err != nil {
		s.Logger.Warn("identity provider email lookup failed",
			zap.String("buyerId", buyerID), zap.Error(err))
		return ""
	}
	if email != "" {
		s.Logger.Info("buyer email resolved from identity provider",
			zap.String("buyerId", buyerID))
	}
	return email
}
