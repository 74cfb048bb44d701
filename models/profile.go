package models

// UserProfile is the buyer-facing profile record. The Email field may be
// empty for accounts created through social sign-in; the fulfillment pipeline
// then falls back to the identity provider's own record.
type UserProfile struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
}

// DisplayName returns the buyer's printable name, falling back to "Member"
// when the profile carries no name at all.
func (p UserProfile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	default:
		return "Member"
	}
}
