package tasks

import (
	"encoding/json"
	"time"

	"nowme/models"

	"github.com/hibiken/asynq"
)

const TypeDeadLetter = "fulfillment:deadletter"

// QueueDeadLetter is a queue no worker consumes. Tasks parked there stay
// visible to the asynq tooling until someone deals with them, which is the
// whole point: an absorbed pipeline failure has to stay findable.
const QueueDeadLetter = "deadletter"

// deadLetterRetention keeps resolved dead letters inspectable for a month.
const deadLetterRetention = 30 * 24 * time.Hour

// NewDeadLetterTask builds the task retaining an absorbed pipeline failure.
func NewDeadLetterTask(payload models.DeadLetterPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeadLetter, b)
	opts := []asynq.Option{
		asynq.Queue(QueueDeadLetter),
		asynq.Retention(deadLetterRetention),
	}

	return task, opts, nil
}
