package cartes

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the metrics transport wrapper is
// installed, so transport-related options (like debug logging) end up
// underneath it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithAPIKey sets the API key sent as a bearer token on every request.
// Unauthenticated clients simply omit the option; endpoints that need a
// key then fail validation before the wire.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("api key must not be empty")
		}
		c.apiKey = key
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is
// a coarse safety net bounding the total time of a single request. The
// value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The
// supplied client must be safe for concurrent use.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request and
// response is dumped to the log when enabled is true. Not for
// production use; dumps include credentials.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
