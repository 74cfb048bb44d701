package invoice

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"nowme/models"
)

func renderInput() Input {
	price := 30.0
	return Input{
		Booking: models.Booking{
			ID:             "5f1c9a2e-77b4-4d32-9c5d-1a2b3c4d5e6f",
			IdempotencyKey: "cs_test_1",
			Currency:       "eur",
			CreatedAt:      time.Date(2026, 8, 14, 22, 45, 0, 0, time.UTC),
		},
		Buyer:      models.UserProfile{FirstName: "Claire", LastName: "Dubois"},
		BuyerEmail: "claire@example.com",
		Offer:      models.Offer{Title: "Pilates discovery class"},
		Variant:    &models.OfferVariant{Name: "Duo session", Price: &price},
		Partner: models.Partner{
			LegalName:    "Studio Lumière SARL",
			Address:      "12 rue des Martyrs, 75009 Paris",
			SIRET:        "512 345 678 00019",
			VATNumber:    "FR12512345678",
			ContactEmail: "studio@example.com",
		},
		Amount: 59,
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		bookingID string
		want      string
	}{
		{"5f1c9a2e-77b4-4d32-9c5d-1a2b3c4d5e6f", "INV-5F1C9A2E"},
		{"abc", "INV-ABC"},
		{"a-b-c-d-e-f-g-h-i", "INV-ABCDEFGH"},
	}
	for _, tt := range tests {
		if got := Reference(tt.bookingID); got != tt.want {
			t.Errorf("Reference(%q) = %q, want %q", tt.bookingID, got, tt.want)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := NewHTMLRenderer()
	in := renderInput()

	first, err := r.Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := r.Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("two renders of the same input differ")
	}
}

func TestRender_Content(t *testing.T) {
	r := NewHTMLRenderer()
	doc, err := r.Render(renderInput())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(doc)

	for _, want := range []string{
		"INV-5F1C9A2E",
		"Studio Lumière SARL",
		"512 345 678 00019",
		"FR12512345678",
		IssuerLegalName,
		IssuerSIRET,
		IssuerVAT,
		"Claire Dubois",
		"claire@example.com",
		"Pilates discovery class - Duo session",
		"59.00 EUR",
		"billing mandate",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRender_IssueDateFromBookingClock(t *testing.T) {
	r := NewHTMLRenderer()
	in := renderInput()
	// 22:45 UTC on the 14th is already the 15th in Paris.
	doc, err := r.Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(doc), "Issued on 15 August 2026") {
		t.Error("issue date not derived from the booking creation time in Paris local time")
	}
}

func TestRender_PlaceholdersForMissingRecords(t *testing.T) {
	r := NewHTMLRenderer()
	in := Input{
		Booking: models.Booking{ID: "b-min", CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)},
		Offer:   models.Offer{},
		Partner: models.Partner{},
		Amount:  0,
	}
	doc, err := r.Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(doc)
	for _, want := range []string{"Offer unavailable", "Member", "0.00 EUR"} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing fallback %q", want)
		}
	}
}
