package tasks

import (
	"encoding/json"

	"nowme/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "booking:reminder"

// NewReminderTask builds the asynq task for a booking reminder, scheduled at
// the payload's fire date.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(payload.FireDate)}

	return task, opts, nil
}
