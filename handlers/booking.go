package handlers

import (
	"net/http"

	bookingRepo "nowme/database/repository/booking"
	"nowme/models"
	"nowme/services/fulfillment"
	"nowme/utils"

	"github.com/gin-gonic/gin"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// FulfillmentHandler exposes both delivery paths of the pipeline plus the
// booking cancellation transition.
type FulfillmentHandler struct {
	Service  fulfillment.FulfillmentService
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewFulfillmentHandler(svc fulfillment.FulfillmentService, bookings bookingRepo.BookingRepository, logger *zap.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{Service: svc, Bookings: bookings, Logger: logger}
}

// ConfirmBooking is the synchronous client fallback: the member lands back
// from Stripe before (or instead of) the webhook arriving, and the success
// page confirms the booking directly. The checkout session is re-fetched
// from Stripe so the client cannot forge amounts or references.
func (h *FulfillmentHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.SessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "sessionId is required")
		return
	}

	session, err := checkoutsession.Get(input.SessionID, nil)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "could not verify checkout session", err.Error())
		return
	}

	ev := eventFromCheckoutSession(session)
	if ev.BuyerID == "" {
		// The authenticated member is the buyer when the session metadata
		// does not already say so.
		if buyerID, ok := c.Get("buyerID"); ok {
			ev.BuyerID, _ = buyerID.(string)
		}
	}

	ack := h.Service.Process(c.Request.Context(), ev)
	if ack.Retry {
		utils.JSONError(c, ack.Status, "booking confirmation failed", "please retry")
		return
	}

	booking, err := h.Bookings.GetByIdempotencyKey(c.Request.Context(), ev.IdempotencyKey)
	if err != nil || booking == nil {
		utils.JSONError(c, http.StatusInternalServerError, "booking not found after confirmation", "")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking performs the one allowed non-monotonic transition.
func (h *FulfillmentHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		CancelledBy string `json:"cancelledBy"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		input.CancelledBy = models.CancelledByBuyer
	}
	switch input.CancelledBy {
	case "":
		input.CancelledBy = models.CancelledByBuyer
	case models.CancelledByBuyer, models.CancelledByPartner, models.CancelledByPlatform:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid cancellation attribution", input.CancelledBy)
		return
	}

	if err := h.Bookings.Cancel(c.Request.Context(), id, input.CancelledBy); err != nil {
		utils.JSONError(c, http.StatusConflict, "cancellation failed", err.Error())
		return
	}

	h.Logger.Info("booking cancelled",
		zap.String("bookingId", id),
		zap.String("cancelledBy", input.CancelledBy),
	)
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
