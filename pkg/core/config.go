package core

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.robinhood.com"

// Config contains all configuration options for a client.
type Config struct {
	// BaseURL is prefixed to every endpoint path.
	BaseURL   string `json:"base_url" validate:"required,url"`
	UserAgent string `json:"user_agent"`

	// Timeout bounds every HTTP round-trip.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RateLimitRequests per RateLimitPeriod throttles dispatches; 0 disables it.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config pointing at the production host with a 10s
// timeout and no throttling.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "robinhood-go",
		Timeout:   10 * time.Second,
		LogLevel:  "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.RateLimitRequests > 0 && c.RateLimitPeriod <= 0 {
		return errors.New("RateLimitPeriod must be positive when RateLimitRequests is set")
	}
	return nil
}

// RateLimited reports whether dispatches should be throttled.
func (c *Config) RateLimited() bool {
	return c.RateLimitRequests > 0
}

// WithBaseURL sets the API host and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit sets the throttling parameters and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
