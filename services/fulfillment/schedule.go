package fulfillment

import (
	"strings"

	"nowme/models"
	"nowme/utils"
)

// Display sentinels used when no concrete fact could be resolved.
const (
	DateToBeScheduled = "To be scheduled with the partner"
	DatePending       = "Date pending"
	AddressToConfirm  = "Address to be confirmed with you"
	LocationToConfirm = "Location to be confirmed by the partner"
)

// Meeting locations shorter than this are treated as absent; a one-letter
// "address" helps nobody and must fall through to the next tier.
const minMeetingLocationLen = 5

const dateDisplayLayout = "Monday 2 January 2006 at 15:04"

// ScheduleFacts are the two human-readable strings every confirmation and
// invoice shows, plus the connection link for online offers.
type ScheduleFacts struct {
	DateDisplay     string
	LocationDisplay string
	MeetingURL      string
}

// Resolver chains: each source either answers or yields to the next one, so
// the priority order stays explicit and testable on its own.
type dateSource func(models.Booking, models.Offer) string
type locationSource func(models.Booking, models.Offer, models.Partner) string

var dateSources = []dateSource{bookingScheduledDate, offerEventDate, pendingDate}

var locationSources = []locationSource{explicitMeetingLocation, atHomePlaceholder, partnerBusinessAddress}

// ResolveSchedule produces the date and location lines for a booking. Pure:
// no clock reads, no I/O. All timestamps are rendered in the platform's
// fixed civil timezone so the printed time matches the partner's wall-clock
// commitment no matter where a server or client happens to run.
func ResolveSchedule(b models.Booking, o models.Offer, p models.Partner) ScheduleFacts {
	facts := ScheduleFacts{DateDisplay: resolveDate(b, o)}

	if o.Modality == models.ModalityOnline {
		// Online offers carry a connection link instead of a venue.
		facts.MeetingURL = o.MeetingURL
		return facts
	}

	facts.LocationDisplay = resolveLocation(b, o, p)
	return facts
}

func resolveDate(b models.Booking, o models.Offer) string {
	for _, source := range dateSources {
		if v := source(b, o); v != "" {
			return v
		}
	}
	return DatePending
}

func resolveLocation(b models.Booking, o models.Offer, p models.Partner) string {
	for _, source := range locationSources {
		if v := source(b, o, p); v != "" {
			return v
		}
	}
	return LocationToConfirm
}

// bookingScheduledDate uses the explicitly agreed appointment time.
func bookingScheduledDate(b models.Booking, _ models.Offer) string {
	if b.ScheduledAt == nil {
		return ""
	}
	return b.ScheduledAt.In(utils.CivilTime()).Format(dateDisplayLayout)
}

// offerEventDate uses the offer's fixed event start, for dated events.
func offerEventDate(_ models.Booking, o models.Offer) string {
	if o.EventStart == nil {
		return ""
	}
	return o.EventStart.In(utils.CivilTime()).Format(dateDisplayLayout)
}

// pendingDate distinguishes "buyer still has to pick a slot" from a plainly
// unknown date.
func pendingDate(_ models.Booking, o models.Offer) string {
	if o.RequiresScheduling() {
		return DateToBeScheduled
	}
	return ""
}

// explicitMeetingLocation accepts the per-booking free-text location if it
// passes the sanity check.
func explicitMeetingLocation(b models.Booking, _ models.Offer, _ models.Partner) string {
	loc := strings.TrimSpace(b.MeetingLocation)
	if len(loc) < minMeetingLocationLen {
		return ""
	}
	return loc
}

// atHomePlaceholder covers services delivered at the buyer's address before
// that address is known.
func atHomePlaceholder(_ models.Booking, o models.Offer, _ models.Partner) string {
	if o.Modality == models.ModalityAtHome {
		return AddressToConfirm
	}
	return ""
}

// partnerBusinessAddress falls back to the partner's registered address.
func partnerBusinessAddress(_ models.Booking, _ models.Offer, p models.Partner) string {
	return strings.TrimSpace(p.Address)
}
