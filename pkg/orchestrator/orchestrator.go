package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/rendercv"
	"github.com/goliatone/go-cvgen/pkg/renderers/local"
	"github.com/goliatone/go-cvgen/pkg/schema"
	"github.com/goliatone/go-cvgen/pkg/validation"
)

const defaultClientName = local.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a render client registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithClients registers clients on top of the configured registry. When this
// is the only render option given, the local CLI client is not registered.
func WithClients(clients ...render.Client) Option {
	return func(o *Orchestrator) {
		o.pending = append(o.pending, clients...)
	}
}

// WithDefaultClient overrides the client used when a request omits an
// explicit Client field.
func WithDefaultClient(name string) Option {
	return func(o *Orchestrator) {
		o.defaultClient = name
	}
}

// WithSchemaRegistry injects the entry-kind registry consulted by the
// validation gate.
func WithSchemaRegistry(reg *schema.Registry) Option {
	return func(o *Orchestrator) {
		o.schemas = reg
	}
}

// WithValidation toggles the validation gate ahead of serialization. It is
// on by default; switching it off serializes whatever the session holds.
func WithValidation(enabled bool) Option {
	return func(o *Orchestrator) {
		o.skipValidation = !enabled
	}
}

// WithTransformer registers a Transformer that can mutate the composed
// document after validation but before serialization.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the full pipeline from session to rendered PDF.
// It applies sensible defaults (local CLI client, built-in entry kinds)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	schemas         *schema.Registry
	registry        *render.Registry
	pending         []render.Client
	defaultClient   string
	skipValidation  bool
	transformer     Transformer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultClient: defaultClientName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs to a pipeline run. Exactly one of Session,
// Document, or YAML supplies the content; they are consulted in the reverse
// of that order.
type Request struct {
	// Session supplies the live document model. It is validated and composed
	// into a render document. Optional when Document or YAML is supplied.
	Session *document.Session

	// Document bypasses session composition when the caller has already
	// assembled one. The document is cloned before any transformation.
	Document *rendercv.Document

	// YAML hands pre-serialized bytes to the client unchanged, skipping
	// validation, transformation, and encoding.
	YAML []byte

	// Client names the render client to use. If empty, the orchestrator
	// falls back to the configured default client.
	Client string
}

// ValidationError reports a document stopped by the validation gate. The
// wrapped Result carries the individual problems.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	if len(e.Result.Errors) == 1 {
		return "orchestrator: document failed validation: " + e.Result.Errors[0]
	}
	return fmt.Sprintf("orchestrator: document failed validation (%d problems)", len(e.Result.Errors))
}

// Generate executes the validate → compose → serialize → render sequence and
// returns the client's result: PDF bytes on success, a diagnostic message
// when the external renderer rejected the document.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (render.Result, error) {
	if ctx == nil {
		return render.Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.Result{}, err
	}
	if err := o.ready(); err != nil {
		return render.Result{}, err
	}

	data, err := o.Preview(ctx, req)
	if err != nil {
		return render.Result{}, err
	}

	client, err := o.clientFor(req.Client)
	if err != nil {
		return render.Result{}, err
	}

	result, err := client.Render(ctx, data)
	if err != nil {
		return render.Result{}, fmt.Errorf("orchestrator: render: %w", err)
	}
	return result, nil
}

// Preview runs the pipeline up to serialization and returns the YAML bytes
// without contacting a render client.
func (o *Orchestrator) Preview(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.ready(); err != nil {
		return nil, err
	}

	if req.YAML != nil {
		return req.YAML, nil
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return nil, err
	}

	if !o.skipValidation {
		if result := validation.Validate(doc.CV, o.schemas); !result.Valid {
			return nil, &ValidationError{Result: result}
		}
	}

	if err := o.applyTransformer(ctx, &doc); err != nil {
		return nil, err
	}

	data, err := rendercv.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: serialize document: %w", err)
	}
	return data, nil
}

// Validate runs the validation stage alone. Raw YAML is checked against the
// external renderer schema; session and document requests against the
// entry-kind rules.
func (o *Orchestrator) Validate(req Request) validation.Result {
	if req.YAML != nil {
		issues := validation.CheckExternal(req.YAML)
		return validation.Result{Valid: len(issues) == 0, Errors: issues}
	}
	if req.Document != nil {
		return validation.Validate(req.Document.CV, o.schemas)
	}
	if req.Session != nil {
		return validation.Validate(req.Session.CV, o.schemas)
	}
	return validation.Validate(nil, o.schemas)
}

// Import replaces the session contents with an external YAML document. The
// bytes are checked against the renderer schema, then decoded; any failure
// leaves the session untouched.
func (o *Orchestrator) Import(s *document.Session, data []byte) error {
	if s == nil {
		return errors.New("orchestrator: session is required")
	}
	if issues := validation.CheckExternal(data); len(issues) > 0 {
		return &ValidationError{Result: validation.Result{Valid: false, Errors: issues}}
	}
	doc, err := rendercv.Decode(data)
	if err != nil {
		return fmt.Errorf("orchestrator: import: %w", err)
	}
	doc.Install(s)
	return nil
}

func (o *Orchestrator) resolveDocument(req Request) (rendercv.Document, error) {
	if req.Document != nil {
		return req.Document.Clone(), nil
	}
	if req.Session == nil {
		return rendercv.Document{}, errors.New("orchestrator: session, document, or yaml is required")
	}
	return rendercv.FromSession(req.Session), nil
}

func (o *Orchestrator) clientFor(name string) (render.Client, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: client registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultClient
	}

	if target != "" {
		client, err := o.registry.Get(target)
		if err == nil {
			return client, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: client %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no render clients registered")
	}

	client, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: client %q: %w", names[0], err)
	}
	return client, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, doc *rendercv.Document) error {
	if o.transformer == nil || doc == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, doc); err != nil {
		return fmt.Errorf("orchestrator: transform document: %w", err)
	}
	return nil
}

func (o *Orchestrator) ready() error {
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.schemas == nil {
		o.schemas = schema.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		if len(o.pending) == 0 {
			o.registry.MustRegister(local.New())
		}
	}
	for _, client := range o.pending {
		if client == nil {
			continue
		}
		if err := o.registry.Register(client); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register client: %w", err)
		}
	}
	o.pending = nil
	if o.defaultClient == "" {
		o.defaultClient = defaultClientName
	}

	o.defaultsApplied = true
}
