package fulfillment

import (
	"context"
	"fmt"
	"time"

	bookingRepo "nowme/database/repository/booking"
	catalogRepo "nowme/database/repository/catalog"
	partnerRepo "nowme/database/repository/partner"
	profileRepo "nowme/database/repository/profile"
	"nowme/models"
	"nowme/services/identity"
	"nowme/services/invoice"
	"nowme/services/notification"

	"go.uber.org/zap"
)

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// FulfillmentService is the pipeline's entry point. Both delivery paths
// (payment webhook and client fallback) normalize their input into a
// FulfillmentEvent and call Process; the returned Ack drives the HTTP
// response and, through it, upstream redelivery.
type FulfillmentService interface {
	Process(ctx context.Context, ev models.FulfillmentEvent) Ack
}

// ReminderScheduler queues the pre-appointment reminder for a booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, p models.ReminderPayload) error
}

// DefaultFulfillmentService is the production implementation.
type DefaultFulfillmentService struct {
	BookingRepo bookingRepo.BookingRepository
	CatalogRepo catalogRepo.CatalogRepository
	PartnerRepo partnerRepo.PartnerRepository
	ProfileRepo profileRepo.ProfileRepository
	Identity    identity.Directory
	Invoices    invoice.Renderer
	Notifier    notification.NotificationService
	Reminders   ReminderScheduler
	Governor    *Governor
	Logger      *zap.Logger
}

// Process runs an event through reconciliation, entity resolution, invoice
// rendering and notification fan-out, then lets the governor translate the
// outcome into an acknowledgment. Panics anywhere in the pipeline are
// converted to absorbed failures; a single poison event must never wedge the
// delivery system in a redelivery loop.
func (s *DefaultFulfillmentService) Process(ctx context.Context, ev models.FulfillmentEvent) (ack Ack) {
	defer func() {
		if r := recover(); r != nil {
			ack = s.Governor.Govern(ctx, ev, fmt.Errorf("panic in fulfillment pipeline: %v", r))
		}
	}()
	return s.Governor.Govern(ctx, ev, s.run(ctx, ev))
}

func (s *DefaultFulfillmentService) run(ctx context.Context, ev models.FulfillmentEvent) error {
	if err := ValidateEvent(ev); err != nil {
		return err
	}

	booking, created, err := s.reconcile(ctx, ev)
	if err != nil {
		return err
	}
	if !created {
		// The other delivery path already fulfilled this booking; emails and
		// notifications went out with that invocation.
		return nil
	}
	if booking.Status == models.BookingStatusCancelled {
		s.Logger.Warn("fulfillment event for a cancelled booking ignored",
			zap.String("bookingId", booking.ID))
		return nil
	}

	resolved := s.resolveEntities(ctx, booking)
	amount := AuthoritativeAmount(*booking, resolved.Variant)
	facts := ResolveSchedule(*booking, resolved.Offer, resolved.Partner)

	document, err := s.Invoices.Render(invoice.Input{
		Booking:    *booking,
		Buyer:      resolved.Buyer,
		BuyerEmail: resolved.BuyerEmail,
		Offer:      resolved.Offer,
		Variant:    resolved.Variant,
		Partner:    resolved.Partner,
		Amount:     amount,
	})
	if err != nil {
		return err
	}

	result, err := s.Notifier.NotifyBooking(ctx, notification.BookingNotice{
		Booking:         *booking,
		Buyer:           resolved.Buyer,
		BuyerEmail:      resolved.BuyerEmail,
		Offer:           resolved.Offer,
		Variant:         resolved.Variant,
		Partner:         resolved.Partner,
		Amount:          amount,
		DateDisplay:     facts.DateDisplay,
		LocationDisplay: facts.LocationDisplay,
		MeetingURL:      facts.MeetingURL,
		Invoice:         document,
	})
	s.Logger.Info("fulfillment fan-out finished",
		zap.String("bookingId", booking.ID),
		zap.Bool("buyerEmailSent", result.BuyerEmailSent),
		zap.Bool("partnerEmailSent", result.PartnerEmailSent),
		zap.Bool("notificationSaved", result.NotificationSaved),
	)
	if err != nil {
		return err
	}

	s.scheduleReminder(ctx, booking, resolved, facts)
	return nil
}

// scheduleReminder queues the pre-appointment reminder. Best effort: a queue
// hiccup is not worth failing an already-fulfilled booking over.
func (s *DefaultFulfillmentService) scheduleReminder(ctx context.Context, booking *models.Booking, resolved *Resolved, facts ScheduleFacts) {
	if s.Reminders == nil || booking.ScheduledAt == nil || resolved.BuyerEmail == "" {
		return
	}

	payload := models.ReminderPayload{
		BookingID:       booking.ID,
		BuyerEmail:      resolved.BuyerEmail,
		BuyerName:       resolved.Buyer.DisplayName(),
		OfferTitle:      resolved.Offer.Title,
		DateDisplay:     facts.DateDisplay,
		LocationDisplay: facts.LocationDisplay,
		FireDate:        booking.ScheduledAt.Add(-reminderLead),
	}
	if err := s.Reminders.ScheduleBookingReminder(ctx, payload); err != nil {
		s.Logger.Warn("booking reminder scheduling failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
