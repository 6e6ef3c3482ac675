package remote

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the remote client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, e.g. to add TLS settings or
// proxies. Tests use it to point at a fake service.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout overrides the per-request timeout applied to the render call
// and the PDF follow-up download.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger overrides the logger used for request progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
