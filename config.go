package cartes

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven client settings under the CARTES_
// prefix: CARTES_BASE_URL, CARTES_API_KEY, CARTES_TIMEOUT,
// CARTES_DEBUG.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL"`
	APIKey  string        `envconfig:"API_KEY"`
	Timeout time.Duration `envconfig:"TIMEOUT"`
	Debug   bool          `envconfig:"DEBUG"`
}

// FromEnv constructs a Client from the CARTES_* environment variables.
// Explicit options are applied after the environment, so they win.
func FromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("cartes", &cfg); err != nil {
		return nil, err
	}

	envOpts := make([]Option, 0, len(opts)+3)
	if cfg.APIKey != "" {
		envOpts = append(envOpts, WithAPIKey(cfg.APIKey))
	}
	if cfg.Timeout > 0 {
		envOpts = append(envOpts, WithHTTPTimeout(cfg.Timeout))
	}
	if cfg.Debug {
		envOpts = append(envOpts, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(envOpts, opts...)...)
}
