package routes

import (
	"time"

	"nowme/handlers"
	"nowme/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFulfillmentRoutes registers the pipeline's two entry paths and the
// cancellation transition. The webhook route is unauthenticated by design;
// its payload is authenticated by the Stripe signature instead.
func RegisterFulfillmentRoutes(r *gin.Engine, fh *handlers.FulfillmentHandler) {
	r.POST("/api/payments/webhook", fh.HandleStripeWebhook)

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware())
		bookings.POST("/confirm", fh.ConfirmBooking)
		bookings.POST("/:id/cancel", fh.CancelBooking)
	}
}

// RegisterPartnerRoutes registers the partner in-app notification feed.
func RegisterPartnerRoutes(r *gin.Engine, nh *handlers.NotificationHandler) {
	partners := r.Group("/api/partners")
	{
		partners.Use(middleware.JWTAuthMiddleware())
		partners.GET("/:id/notifications", nh.ListPartnerNotifications)
		partners.PUT("/notifications/:id/read", nh.MarkNotificationRead)
	}
}

// RegisterHealthRoute registers the dependency health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, fh *handlers.FulfillmentHandler, nh *handlers.NotificationHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFulfillmentRoutes(r, fh)
	RegisterPartnerRoutes(r, nh)
	RegisterHealthRoute(r)
}
