// File: nowme/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nowme/config"
	"nowme/cron"
	"nowme/database"
	bookingRepoPkg "nowme/database/repository/booking"
	catalogRepoPkg "nowme/database/repository/catalog"
	notificationRepoPkg "nowme/database/repository/notification"
	partnerRepoPkg "nowme/database/repository/partner"
	profileRepoPkg "nowme/database/repository/profile"
	"nowme/handlers"
	"nowme/middleware"
	"nowme/routes"
	"nowme/services/fulfillment"
	"nowme/services/identity"
	"nowme/services/invoice"
	"nowme/services/notification"
	"nowme/services/tasks"
	"nowme/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	if err := bookingRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	partnerRepo := partnerRepoPkg.NewMongoPartnerRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	directory, err := identity.NewFirebaseDirectory(utils.AuthClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize identity directory: %v", err)
	}

	mailer := notification.NewResendMailer(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailReplyTo,
	)

	notifier, err := notification.NewDefaultNotificationService(mailer, notificationRepo, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	taskClient := tasks.NewClient()
	defer taskClient.Close()

	fulfillmentService := &fulfillment.DefaultFulfillmentService{
		BookingRepo: bookingRepo,
		CatalogRepo: catalogRepo,
		PartnerRepo: partnerRepo,
		ProfileRepo: profileRepo,
		Identity:    directory,
		Invoices:    invoice.NewHTMLRenderer(),
		Notifier:    notifier,
		Reminders:   taskClient,
		Governor: &fulfillment.Governor{
			Logger:      logger,
			DeadLetters: taskClient,
		},
		Logger: logger,
	}

	fulfillmentHandler := handlers.NewFulfillmentHandler(fulfillmentService, bookingRepo, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	routes.RegisterRoutes(router, fulfillmentHandler, notificationHandler)

	// Background reminder worker.
	cron.InitReminderWorker(mailer)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
