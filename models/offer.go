package models

import "time"

// Delivery modalities for an offer.
const (
	ModalityOnline   = "online"    // delivered over a video/meeting link
	ModalityInPerson = "in_person" // delivered at a fixed venue
	ModalityAtHome   = "at_home"   // delivered at an address the buyer supplies
)

// Offer is the catalog description of what was purchased. Read-only to this
// service; owned by catalog management.
type Offer struct {
	ID            string     `bson:"id" json:"id"`
	PartnerID     string     `bson:"partner_id" json:"partnerId"`
	Title         string     `bson:"title" json:"title"`
	Modality      string     `bson:"modality" json:"modality"` // online|in_person|at_home
	ListPrice     float64    `bson:"list_price" json:"listPrice"`
	EventStart    *time.Time `bson:"event_start,omitempty" json:"eventStart,omitempty"`       // Fixed schedule, for dated events
	SchedulingURL string     `bson:"scheduling_url,omitempty" json:"schedulingUrl,omitempty"` // Link the buyer uses to pick a slot
	MeetingURL    string     `bson:"meeting_url,omitempty" json:"meetingUrl,omitempty"`       // Connection link, for online offers
}

// RequiresScheduling reports whether the buyer still has to agree a time with
// the partner: the offer exposes a scheduling link or is performed at the
// buyer's home.
func (o Offer) RequiresScheduling() bool {
	return o.SchedulingURL != "" || o.Modality == ModalityAtHome
}

// OfferVariant is an optional sub-offer with its own name and price override.
type OfferVariant struct {
	ID      string   `bson:"id" json:"id"`
	OfferID string   `bson:"offer_id" json:"offerId"`
	Name    string   `bson:"name" json:"name"`
	Price   *float64 `bson:"price,omitempty" json:"price,omitempty"` // Overrides the offer list price when set
}
