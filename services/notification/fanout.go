package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"

	notificationRepo "nowme/database/repository/notification"
	"nowme/models"
	"nowme/services/invoice"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production fan-out implementation.
type DefaultNotificationService struct {
	Mailer Mailer
	Repo   notificationRepo.NotificationRepository
	Logger *zap.Logger
}

func NewDefaultNotificationService(mailer Mailer, repo notificationRepo.NotificationRepository, logger *zap.Logger) (*DefaultNotificationService, error) {
	if mailer == nil || repo == nil {
		return nil, fmt.Errorf("notification service initialization error: mailer or repository is nil")
	}
	return &DefaultNotificationService{Mailer: mailer, Repo: repo, Logger: logger}, nil
}

// NotifyBooking runs the buyer branch and the partner branch. The branches
// are independent: the partner branch runs even when the buyer send failed,
// and inside the partner branch the email and the in-app record must not
// block each other.
func (s *DefaultNotificationService) NotifyBooking(ctx context.Context, notice BookingNotice) (models.FanoutResult, error) {
	var result models.FanoutResult

	buyerErr := s.notifyBuyer(ctx, notice, &result)
	s.notifyPartner(ctx, notice, &result)

	return result, buyerErr
}

func (s *DefaultNotificationService) notifyBuyer(ctx context.Context, notice BookingNotice, result *models.FanoutResult) error {
	if notice.BuyerEmail == "" {
		// The booking stands; the missing confirmation is handled manually.
		result.BuyerSkipReason = "no recipient email"
		s.Logger.Warn("buyer confirmation skipped: no recipient email",
			zap.String("bookingId", notice.Booking.ID),
			zap.String("buyerId", notice.Booking.BuyerID),
		)
		return nil
	}

	msg := Email{
		To:      notice.BuyerEmail,
		Subject: fmt.Sprintf("Your booking is confirmed: %s", notice.Offer.Title),
		HTML:    buyerEmailBody(notice),
		Attachments: []Attachment{
			{
				Filename: invoice.Reference(notice.Booking.ID) + ".html",
				Content:  notice.Invoice,
			},
		},
	}

	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.Logger.Error("buyer confirmation email failed",
			zap.String("bookingId", notice.Booking.ID),
			zap.Error(err),
		)
		return err
	}

	result.BuyerEmailSent = true
	s.Logger.Info("buyer confirmation email sent", zap.String("bookingId", notice.Booking.ID))
	return nil
}

func (s *DefaultNotificationService) notifyPartner(ctx context.Context, notice BookingNotice, result *models.FanoutResult) {
	if notice.Partner.Preferences.BookingEmailsDisabled {
		s.Logger.Debug("partner booking notifications disabled by preference",
			zap.String("partnerId", notice.Partner.ID),
		)
		return
	}

	var wg sync.WaitGroup

	if notice.Partner.ContactEmail != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := Email{
				To:      notice.Partner.ContactEmail,
				Subject: fmt.Sprintf("New booking: %s", notice.Offer.Title),
				HTML:    partnerEmailBody(notice),
			}
			if err := s.Mailer.Send(ctx, msg); err != nil {
				s.Logger.Error("partner email failed",
					zap.String("bookingId", notice.Booking.ID),
					zap.String("partnerId", notice.Partner.ID),
					zap.Error(err),
				)
				return
			}
			result.PartnerEmailSent = true
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		n := models.Notification{
			PartnerID: notice.Partner.ID,
			Type:      models.NotificationTypeBooking,
			Title:     "New booking",
			Body:      fmt.Sprintf("%s booked %s (%s).", notice.Buyer.DisplayName(), notice.Offer.Title, notice.DateDisplay),
			Data: map[string]any{
				"bookingId": notice.Booking.ID,
				"offerId":   notice.Offer.ID,
				"amount":    notice.Amount,
			},
		}
		if _, err := s.Repo.Insert(ctx, n); err != nil {
			s.Logger.Error("partner in-app notification failed",
				zap.String("bookingId", notice.Booking.ID),
				zap.String("partnerId", notice.Partner.ID),
				zap.Error(err),
			)
			return
		}
		result.NotificationSaved = true
	}()

	wg.Wait()
}

func buyerEmailBody(notice BookingNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you, %s!</h2>", notice.Buyer.DisplayName())
	fmt.Fprintf(&b, "<p>Your booking for <strong>%s</strong>", notice.Offer.Title)
	if notice.Variant != nil && notice.Variant.Name != "" {
		fmt.Fprintf(&b, " (%s)", notice.Variant.Name)
	}
	b.WriteString(" is confirmed.</p>")
	fmt.Fprintf(&b, "<p><strong>When:</strong> %s</p>", notice.DateDisplay)
	if notice.MeetingURL != "" {
		fmt.Fprintf(&b, "<p><strong>Join online:</strong> <a href=%q>%s</a></p>", notice.MeetingURL, notice.MeetingURL)
	} else if notice.LocationDisplay != "" {
		fmt.Fprintf(&b, "<p><strong>Where:</strong> %s</p>", notice.LocationDisplay)
	}
	fmt.Fprintf(&b, "<p><strong>Amount paid:</strong> %.2f %s</p>", notice.Amount, strings.ToUpper(notice.Booking.Currency))
	b.WriteString("<p>Your invoice is attached to this email.</p>")
	return b.String()
}

func partnerEmailBody(notice BookingNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>New booking for %s</h2>", notice.Offer.Title)
	fmt.Fprintf(&b, "<p><strong>Member:</strong> %s", notice.Buyer.DisplayName())
	if notice.BuyerEmail != "" {
		fmt.Fprintf(&b, " (%s)", notice.BuyerEmail)
	}
	b.WriteString("</p>")
	fmt.Fprintf(&b, "<p><strong>When:</strong> %s</p>", notice.DateDisplay)
	if notice.LocationDisplay != "" {
		fmt.Fprintf(&b, "<p><strong>Where:</strong> %s</p>", notice.LocationDisplay)
	}
	fmt.Fprintf(&b, "<p><strong>Amount:</strong> %.2f %s</p>", notice.Amount, strings.ToUpper(notice.Booking.Currency))
	return b.String()
}
