package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/YeZawHlaing/eduverse/internal/config"
	"github.com/YeZawHlaing/eduverse/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type welcomeMailer interface {
	SendWelcomeEmail(to, username string) error
}

// InitHandlers builds the dependencies task handlers need. It must run before
// Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload never succeeds on retry.
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskWelcome).
		Int64("admin_id", p.AdminID).
		Str("to", p.To).
		Logger()

	log.Info().Msg("processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.Username); err != nil {
		log.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	log.Info().Msg("sent welcome email")
	return nil
}
