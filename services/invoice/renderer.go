package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"nowme/models"
	"nowme/utils"
)

// The platform's own fixed legal identity. It appears on every invoice as
// the issuer (mandatary): invoices are issued by the platform in the name
// and on behalf of the partner, who remains the seller of record.
const (
	IssuerLegalName = "Nowme Club SAS"
	IssuerAddress   = "128 rue La Boétie, 75008 Paris, France"
	IssuerSIRET     = "893 456 789 00012"
	IssuerVAT       = "FR32893456789"
)

// Renderer produces the billing document for one booking. Rendering the same
// inputs twice must yield byte-identical output; nothing here may read the
// clock or any other ambient state.
type Renderer interface {
	Render(in Input) ([]byte, error)
}

// Input is everything a single-booking invoice is derived from.
type Input struct {
	Booking    models.Booking
	Buyer      models.UserProfile
	BuyerEmail string
	Offer      models.Offer
	Variant    *models.OfferVariant
	Partner    models.Partner
	Amount     float64
}

// HTMLRenderer renders the fixed single-page HTML layout.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Reference derives the unique invoice reference from a booking id. Stable
// across re-renders so a resent invoice keeps the same number.
func Reference(bookingID string) string {
	compact := strings.ToUpper(strings.ReplaceAll(bookingID, "-", ""))
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return "INV-" + compact
}

// Render lays out the invoice document.
func (r *HTMLRenderer) Render(in Input) ([]byte, error) {
	item := in.Offer.Title
	if item == "" {
		item = "Offer unavailable"
	}
	if in.Variant != nil && in.Variant.Name != "" {
		item = item + " - " + in.Variant.Name
	}

	currency := strings.ToUpper(in.Booking.Currency)
	if currency == "" {
		currency = "EUR"
	}

	data := documentData{
		Reference:     Reference(in.Booking.ID),
		IssueDate:     in.Booking.CreatedAt.In(utils.CivilTime()).Format("2 January 2006"),
		SellerName:    in.Partner.LegalName,
		SellerAddress: in.Partner.Address,
		SellerSIRET:   in.Partner.SIRET,
		SellerVAT:     in.Partner.VATNumber,
		IssuerName:    IssuerLegalName,
		IssuerAddress: IssuerAddress,
		IssuerSIRET:   IssuerSIRET,
		IssuerVAT:     IssuerVAT,
		BuyerName:     in.Buyer.DisplayName(),
		BuyerEmail:    in.BuyerEmail,
		LineItem:      item,
		Amount:        fmt.Sprintf("%.2f %s", in.Amount, currency),
		SellerContact: in.Partner.ContactEmail,
	}
	if data.SellerName == "" {
		data.SellerName = "Partner"
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("invoice render failed for booking %s: %w", in.Booking.ID, err)
	}
	return buf.Bytes(), nil
}
