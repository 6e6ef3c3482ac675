package cvgen

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/orchestrator"
	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/rendercv"
	"github.com/goliatone/go-cvgen/pkg/schema"
	"github.com/goliatone/go-cvgen/pkg/templates"
	"github.com/goliatone/go-cvgen/pkg/validation"
)

// Session is the mutable editing state behind every operation; alias exported
// via the root package for convenience.
type Session = document.Session

// CV is the document body a session edits.
type CV = document.CV

// Entry is one item inside a CV section.
type Entry = document.Entry

// Design carries theme and color choices.
type Design = document.Design

// SocialNetwork is a network/username pair shown in the CV header.
type SocialNetwork = document.SocialNetwork

// Template is a curated starting-point preset.
type Template = templates.Template

// Document is a composed renderer-ready document.
type Document = rendercv.Document

// Result carries the outcome of a render call.
type Result = render.Result

// Request names the alternative inputs accepted by orchestrator operations.
type Request = orchestrator.Request

// Option configures an Orchestrator.
type Option = orchestrator.Option

// ValidationError reports the individual problems that stopped an operation.
type ValidationError = orchestrator.ValidationError

// NewSession returns a session ready for editing, with theme and language
// defaults applied.
func NewSession() *Session {
	return document.NewSession()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that keep one instance around instead of using the
// one-shot helpers below.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Preview composes the session and serializes it to renderer-ready YAML
// without rendering. It is the download-the-document path.
func Preview(ctx context.Context, s *document.Session, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Preview(ctx, orchestrator.Request{Session: s})
}

// Render validates, serializes, and renders the session with the named client
// (empty name picks the default). Validation problems come back as a failed
// Result carrying the joined messages rather than an error, so callers surface
// them the same way they surface renderer diagnostics; the client is never
// called for an invalid document.
func Render(ctx context.Context, s *document.Session, clientName string, options ...orchestrator.Option) (render.Result, error) {
	gen := orchestrator.New(options...)
	result, err := gen.Generate(ctx, orchestrator.Request{Session: s, Client: clientName})
	var verr *orchestrator.ValidationError
	if errors.As(err, &verr) {
		return render.Result{Message: strings.Join(verr.Result.Errors, "\n")}, nil
	}
	return result, err
}

// Import replaces the session contents with an externally produced document
// once it passes the schema check. A failed import leaves the session
// untouched.
func Import(s *document.Session, data []byte, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.Import(s, data)
}

// ExternalSchemaJSON returns the embedded JSON Schema that Import and raw
// document validation check against. Serve it to editors that want
// client-side validation:
//
//	mux.HandleFunc("/schema.json", func(w http.ResponseWriter, r *http.Request) {
//	  w.Header().Set("Content-Type", "application/json")
//	  w.Write(cvgen.ExternalSchemaJSON())
//	})
func ExternalSchemaJSON() []byte {
	return validation.ExternalSchemaJSON()
}

// WithClients registers render clients with the orchestrator.
func WithClients(clients ...render.Client) orchestrator.Option {
	return orchestrator.WithClients(clients...)
}

// WithDefaultClient names the client used when a request does not pick one.
func WithDefaultClient(name string) orchestrator.Option {
	return orchestrator.WithDefaultClient(name)
}

// WithRegistry supplies a pre-populated render client registry.
func WithRegistry(registry *render.Registry) orchestrator.Option {
	return orchestrator.WithRegistry(registry)
}

// WithSchemaRegistry overrides the entry-kind registry consulted during
// validation.
func WithSchemaRegistry(reg *schema.Registry) orchestrator.Option {
	return orchestrator.WithSchemaRegistry(reg)
}

// WithValidation toggles the validation gate ahead of serialization.
func WithValidation(enabled bool) orchestrator.Option {
	return orchestrator.WithValidation(enabled)
}

// WithTransformer applies a document transformer between composition and
// serialization.
func WithTransformer(t orchestrator.Transformer) orchestrator.Option {
	return orchestrator.WithTransformer(t)
}
