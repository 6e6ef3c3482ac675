package render

import "context"

// Result is the outcome of a render call. Tool-level failures such as a
// missing CLI, renderer diagnostics, or an unreachable API land here with
// Success false and a user-facing message; the error return on Render is
// reserved for plumbing failures such as a canceled context.
type Result struct {
	Success bool
	Message string
	PDF     []byte
}

// Client turns an encoded document into a PDF.
type Client interface {
	Name() string
	Render(ctx context.Context, doc []byte) (Result, error)
	HealthCheck(ctx context.Context) bool
}
