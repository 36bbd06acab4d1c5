package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

const (
	TaskWelcome = "email:welcome"
)

type WelcomeEmailPayload struct {
	AdminID  int64  `json:"admin_id"`
	To       string `json:"to"`
	Username string `json:"username"`
}

func NewWelcomeEmailTask(p WelcomeEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal welcome email payload")
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueWelcomeEmail schedules the welcome email for a new admin.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, adminID int64, to, username string) error {
	task, err := NewWelcomeEmailTask(WelcomeEmailPayload{
		AdminID:  adminID,
		To:       to,
		Username: username,
	})
	if err != nil {
		return err
	}

	return errors.Wrap(j.enqueue(ctx, task), "failed to enqueue welcome email")
}
