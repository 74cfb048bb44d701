package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"nowme/config"
	"nowme/models"
	"nowme/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 65536

// HandleStripeWebhook is the at-least-once delivery entry point. Stripe
// redelivers on any non-2xx response, so the status we return here is the
// governor's decision, not ours.
func (h *FulfillmentHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "request body too large", err.Error())
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "webhook signature verification failed", err.Error())
		return
	}

	if event.Type != "checkout.session.completed" {
		// Not ours to fulfill; acknowledge so Stripe stops redelivering it.
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "malformed checkout session payload", err.Error())
		return
	}

	ack := h.Service.Process(c.Request.Context(), eventFromCheckoutSession(&session))
	if ack.Retry {
		c.JSON(ack.Status, gin.H{"error": "fulfillment failed, redeliver"})
		return
	}
	c.JSON(ack.Status, gin.H{"received": true})
}

// eventFromCheckoutSession normalizes a Stripe checkout session into the
// pipeline's typed event. The session id doubles as the idempotency key:
// both delivery paths see the same session, so both derive the same key.
func eventFromCheckoutSession(s *stripe.CheckoutSession) models.FulfillmentEvent {
	ev := models.FulfillmentEvent{
		IdempotencyKey:  s.ID,
		OfferID:         s.Metadata["offer_id"],
		BuyerID:         s.Metadata["buyer_id"],
		PartnerID:       s.Metadata["partner_id"],
		VariantID:       s.Metadata["variant_id"],
		CapturedAmount:  float64(s.AmountTotal) / 100,
		Currency:        string(s.Currency),
		MeetingLocation: s.Metadata["meeting_location"],
	}
	if ev.BuyerID == "" {
		ev.BuyerID = s.ClientReferenceID
	}
	if raw := s.Metadata["scheduled_at"]; raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			ev.ScheduledAt = &t
		} else {
			zap.L().Warn("unparseable scheduled_at in session metadata",
				zap.String("sessionId", s.ID), zap.String("value", raw))
		}
	}
	return ev
}
