package config

import (
	"fmt"
	"time"
)

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled bool `koanf:"enabled"`

	// RequestsPerSecond is the steady refill rate per client IP.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// Burst is how many requests a client may make at once.
	Burst int `koanf:"burst"`

	// ExpiresIn drops limiters for clients idle longer than this.
	ExpiresIn time.Duration `koanf:"expires_in"`
}

// DefaultRateLimitConfig returns the limiter used when none is configured.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 20,
		Burst:             40,
		ExpiresIn:         3 * time.Minute,
	}
}

// Validate rejects non-positive limits on an enabled limiter.
func (c *RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be positive")
	}
	return nil
}
