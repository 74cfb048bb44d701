package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nowme/config"
	"nowme/models"
	"nowme/services/notification"
	"nowme/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. It consumes only
// the default queue; the dead-letter queue is deliberately left alone so
// parked failures stay put until someone reviews them.
func InitReminderWorker(mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(mailer))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		body := fmt.Sprintf(
			"<h2>See you soon, %s!</h2><p>A reminder for your booking <strong>%s</strong>.</p><p><strong>When:</strong> %s</p>",
			p.BuyerName, p.OfferTitle, p.DateDisplay,
		)
		if p.LocationDisplay != "" {
			body += fmt.Sprintf("<p><strong>Where:</strong> %s</p>", p.LocationDisplay)
		}

		err := mailer.Send(ctx, notification.Email{
			To:      p.BuyerEmail,
			Subject: fmt.Sprintf("Reminder: %s is coming up", p.OfferTitle),
			HTML:    body,
		})
		if err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for booking %s: %v", p.BookingID, err)
		}
		return err
	}
}
