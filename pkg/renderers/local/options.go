package local

import (
	"log/slog"
	"time"
)

// Option configures the local client.
type Option func(*Client)

// WithCommand overrides the CLI invocation, e.g. ("python", "-m", "rendercv")
// for module-style installs. Render and health-check arguments are appended.
func WithCommand(name string, args ...string) Option {
	return func(c *Client) {
		if name != "" {
			c.command = append([]string{name}, args...)
		}
	}
}

// WithTimeout overrides the render timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithOutputDir renders into a fixed directory instead of a throwaway
// scratch directory, keeping the CLI's artifacts around for inspection.
func WithOutputDir(dir string) Option {
	return func(c *Client) {
		c.dir = dir
	}
}

// WithRunner overrides command execution. Tests use this to fake the CLI.
func WithRunner(run RunFunc) Option {
	return func(c *Client) {
		if run != nil {
			c.run = run
		}
	}
}

// WithLogger overrides the logger used for render progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
