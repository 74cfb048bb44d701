package handlers

import (
	"net/http"
	"strconv"

	notificationRepo "nowme/database/repository/notification"
	"nowme/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the partner-facing in-app feed. Writes come
// exclusively from the fulfillment fan-out; this surface only reads and
// acknowledges.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListPartnerNotifications returns a partner's notifications, newest first.
func (h *NotificationHandler) ListPartnerNotifications(c *gin.Context) {
	partnerID := c.Param("id")
	if partnerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing partner id", "")
		return
	}

	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	notifications, err := h.Repo.ListByPartner(c.Request.Context(), partnerID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead acknowledges one notification.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.MarkRead(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to mark notification read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
