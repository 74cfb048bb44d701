package models

// FanoutResult records what the notification fan-out actually managed to do.
// The two branches are independent: a vendor-side failure never blocks the
// buyer confirmation and vice versa.
type FanoutResult struct {
	BuyerEmailSent    bool   `json:"buyerEmailSent"`
	BuyerSkipReason   string `json:"buyerSkipReason,omitempty"` // set when the buyer branch was not attempted
	PartnerEmailSent  bool   `json:"partnerEmailSent"`
	NotificationSaved bool   `json:"notificationSaved"`
}
