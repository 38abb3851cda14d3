package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookies. The default is the original
	// demo key and offers no real protection; set a real value outside of
	// local development.
	SessionSecret string `env:"SESSION_SECRET, default=qubitara_secret_key_2024"`

	// LoginDelay is the artificial latency applied to every login attempt.
	LoginDelay time.Duration `env:"LOGIN_DELAY, default=1500ms"`

	RateLimit RateLimitConfig
}

type RateLimitConfig struct {
	// MaxAttempts caps failed logins per email inside Window.
	MaxAttempts int           `env:"RATE_LIMIT_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW,       default=15m"`

	// LoginPerMinute bounds /login requests per client IP, a coarse shield in
	// front of the per-email policy.
	LoginPerMinute int `env:"RATE_LIMIT_LOGIN_PER_MINUTE, default=30"`
}

// IsProduction gates the Secure flag on session cookies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
