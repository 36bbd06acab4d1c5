// Package health probes infrastructure dependencies, on demand for the
// status endpoint and on a cron schedule in the background.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/YeZawHlaing/eduverse/internal/config"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type Result struct {
	Status       string    `json:"status"`
	ResponseTime string    `json:"response_time"`
	Error        string    `json:"error,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

func (r Result) Healthy() bool {
	return r.Status == "healthy"
}

type Monitor struct {
	cfg    config.HealthChecksConfig
	checks []Check
	logger *zerolog.Logger
	cron   *cron.Cron

	mu   sync.RWMutex
	last map[string]Result
}

// NewMonitor keeps only the checks enabled in cfg.Checks; an empty list
// enables all of them.
func NewMonitor(cfg config.HealthChecksConfig, logger *zerolog.Logger, checks ...Check) *Monitor {
	enabled := make(map[string]bool, len(cfg.Checks))
	for _, name := range cfg.Checks {
		enabled[name] = true
	}

	var selected []Check
	for _, c := range checks {
		if len(enabled) == 0 || enabled[c.Name] {
			selected = append(selected, c)
		}
	}

	return &Monitor{
		cfg:    cfg,
		checks: selected,
		logger: logger,
		last:   make(map[string]Result),
	}
}

// Run probes every check and returns the results keyed by check name.
func (m *Monitor) Run(ctx context.Context) map[string]Result {
	timeout := m.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	results := make(map[string]Result, len(m.checks))
	for _, c := range m.checks {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		err := c.Probe(checkCtx)
		cancel()

		r := Result{
			Status:       "healthy",
			ResponseTime: time.Since(start).String(),
			CheckedAt:    start,
		}
		if err != nil {
			r.Status = "unhealthy"
			r.Error = err.Error()
		}
		results[c.Name] = r
	}

	m.mu.Lock()
	for name, r := range results {
		m.last[name] = r
	}
	m.mu.Unlock()

	return results
}

// Last returns the results of the most recent run.
func (m *Monitor) Last() map[string]Result {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]Result, len(m.last))
	for k, v := range m.last {
		out[k] = v
	}
	return out
}

func (m *Monitor) tick() {
	for name, r := range m.Run(context.Background()) {
		if r.Healthy() {
			m.logger.Debug().Str("check", name).Str("response_time", r.ResponseTime).Msg("health check passed")
			continue
		}
		m.logger.Error().Str("check", name).Str("error", r.Error).Msg("health check failed")
	}
}

// Start schedules the checks every cfg.Interval. It is a no-op when health
// checks are disabled.
func (m *Monitor) Start() error {
	if !m.cfg.Enabled || len(m.checks) == 0 {
		return nil
	}

	m.cron = cron.New()
	if _, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.cfg.Interval), m.tick); err != nil {
		return fmt.Errorf("scheduling health checks: %w", err)
	}
	m.cron.Start()

	m.logger.Info().
		Dur("interval", m.cfg.Interval).
		Int("checks", len(m.checks)).
		Msg("health monitor started")
	return nil
}

// Stop waits for a running tick to finish or ctx to expire.
func (m *Monitor) Stop(ctx context.Context) {
	if m.cron == nil {
		return
	}
	select {
	case <-m.cron.Stop().Done():
	case <-ctx.Done():
	}
}
