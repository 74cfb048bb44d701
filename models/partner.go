package models

// PartnerPreferences carries the partner's notification opt-outs. The zero
// value means everything is enabled, which is the default for new partners.
type PartnerPreferences struct {
	BookingEmailsDisabled bool `bson:"booking_emails_disabled" json:"bookingEmailsDisabled"`
}

// Partner is the billing identity of a vendor in the network. The platform
// issues invoices on the partner's behalf under a billing mandate, so the
// legal fields here end up verbatim on invoice documents. Read-only to this
// service; owned by the partner directory.
type Partner struct {
	ID           string             `bson:"id" json:"id"`
	LegalName    string             `bson:"legal_name" json:"legalName"`
	Address      string             `bson:"address" json:"address"`
	SIRET        string             `bson:"siret" json:"siret"`
	VATNumber    string             `bson:"vat_number" json:"vatNumber"`
	ContactEmail string             `bson:"contact_email" json:"contactEmail"`
	Preferences  PartnerPreferences `bson:"preferences" json:"preferences"`
}
