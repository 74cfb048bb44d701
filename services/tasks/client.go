package tasks

import (
	"context"
	"fmt"
	"time"

	"nowme/config"
	"nowme/models"

	"github.com/hibiken/asynq"
)

// Client wraps the asynq producer side: reminder scheduling for the
// fulfillment pipeline and dead-letter retention for the governor.
type Client struct {
	inner *asynq.Client
}

func NewClient() *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleBookingReminder queues the reminder email for a scheduled booking.
// Reminders whose fire date has already passed are dropped quietly.
func (c *Client) ScheduleBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	if p.FireDate.Before(time.Now()) {
		return nil
	}
	task, opts, err := NewReminderTask(p)
	if err != nil {
		return fmt.Errorf("reminder task build failed: %w", err)
	}
	if _, err := c.inner.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("reminder enqueue failed: %w", err)
	}
	return nil
}

// EnqueueDeadLetter parks an absorbed fulfillment failure for manual review.
func (c *Client) EnqueueDeadLetter(ctx context.Context, p models.DeadLetterPayload) error {
	task, opts, err := NewDeadLetterTask(p)
	if err != nil {
		return fmt.Errorf("dead-letter task build failed: %w", err)
	}
	if _, err := c.inner.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("dead-letter enqueue failed: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}
