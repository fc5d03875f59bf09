package config

import (
	"fmt"
	"time"
)

// SessionConfig holds configuration for the signed web session cookie.
type SessionConfig struct {
	Secret   string `json:"secret,omitempty" yaml:"secret,omitempty" env:"SESSION_SECRET" validate:"required,min=16"`
	TTLHours int    `json:"ttl_hours" yaml:"ttl_hours" env:"SESSION_TTL_HOURS"`
}

// TTL returns the session lifetime.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// normalize validates the configuration. The secret is only enforced by RequireServer.
func (c *SessionConfig) normalize() error {
	if c.TTLHours < 1 {
		return &ValidationError{
			Field:   "SESSION_TTL_HOURS",
			Message: fmt.Sprintf("must be at least 1 hour, got: %d", c.TTLHours),
		}
	}
	return nil
}
