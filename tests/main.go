package main

import (
	"context"
	"log"
	"time"

	"nowme/config"
	"nowme/database"
	"nowme/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds a local database with partners and offers for manual pipeline runs.
func main() {
	config.LoadConfig()
	database.InitDB()

	db := database.DB()
	partnerColl := db.Collection("partners")
	offerColl := db.Collection("offers")
	variantColl := db.Collection("offer_variants")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, coll := range []string{"partners", "offers", "offer_variants"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	partners := []models.Partner{
		{
			ID:           uuid.New().String(),
			LegalName:    "Atelier Lumière SARL",
			Address:      "12 rue des Martyrs, 75009 Paris",
			SIRET:        "512 384 557 00021",
			VATNumber:    "FR71512384557",
			ContactEmail: "bonjour@atelier-lumiere.fr",
		},
		{
			ID:           uuid.New().String(),
			LegalName:    "Studio Respire",
			Address:      "4 quai de la Joliette, 13002 Marseille",
			SIRET:        "798 123 664 00013",
			VATNumber:    "FR02798123664",
			ContactEmail: "contact@studio-respire.fr",
			Preferences:  models.PartnerPreferences{BookingEmailsDisabled: true},
		},
	}

	eventStart := time.Date(2026, 10, 3, 19, 0, 0, 0, time.UTC)
	cityPrice := 35.0

	offers := []models.Offer{
		{
			ID:         uuid.New().String(),
			PartnerID:  partners[0].ID,
			Title:      "Ceramics discovery workshop",
			Modality:   models.ModalityInPerson,
			ListPrice:  59,
			EventStart: &eventStart,
		},
		{
			ID:            uuid.New().String(),
			PartnerID:     partners[1].ID,
			Title:         "Private breathwork session",
			Modality:      models.ModalityOnline,
			ListPrice:     45,
			SchedulingURL: "https://cal.example.com/studio-respire",
			MeetingURL:    "https://meet.example.com/respire",
		},
		{
			ID:        uuid.New().String(),
			PartnerID: partners[1].ID,
			Title:     "At-home massage",
			Modality:  models.ModalityAtHome,
			ListPrice: 80,
		},
	}

	variants := []models.OfferVariant{
		{
			ID:      uuid.New().String(),
			OfferID: offers[0].ID,
			Name:    "Duo session",
			Price:   &cityPrice,
		},
	}

	for _, p := range partners {
		if _, err := partnerColl.InsertOne(ctx, p); err != nil {
			log.Fatalf("Failed to insert partner: %v", err)
		}
	}
	for _, o := range offers {
		if _, err := offerColl.InsertOne(ctx, o); err != nil {
			log.Fatalf("Failed to insert offer: %v", err)
		}
	}
	for _, v := range variants {
		if _, err := variantColl.InsertOne(ctx, v); err != nil {
			log.Fatalf("Failed to insert variant: %v", err)
		}
	}

	log.Printf("Seeded %d partners, %d offers, %d variants", len(partners), len(offers), len(variants))
}
