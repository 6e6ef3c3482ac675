// Package guided drives the template-first interactive flow: pick a
// template, fill in the identity fields it asks for, then populate its
// recommended sections entry by entry. The flow only mutates the session;
// validation and rendering stay with the caller.
package guided

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/schema"
	"github.com/goliatone/go-cvgen/pkg/templates"
)

// Flow walks a session through guided creation.
type Flow struct {
	driver   PromptDriver
	catalog  []templates.Template
	registry *schema.Registry
}

// Option configures a Flow.
type Option func(*Flow)

// WithDriver overrides the prompt driver. Tests use a scripted driver.
func WithDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithCatalog overrides the template catalog.
func WithCatalog(catalog []templates.Template) Option {
	return func(f *Flow) {
		if len(catalog) > 0 {
			f.catalog = catalog
		}
	}
}

// WithRegistry overrides the entry-kind registry.
func WithRegistry(registry *schema.Registry) Option {
	return func(f *Flow) {
		if registry != nil {
			f.registry = registry
		}
	}
}

// NewFlow builds a flow with the interactive driver, the built-in template
// catalog, and the default entry kinds.
func NewFlow(opts ...Option) *Flow {
	f := &Flow{
		driver:   NewSurveyDriver(),
		catalog:  templates.All(),
		registry: schema.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run executes the guided flow against the session and returns the template
// that was applied. Applying the template resets the CV, so a session passed
// in mid-edit starts over; callers should confirm that beforehand.
func (f *Flow) Run(ctx context.Context, s *document.Session) (templates.Template, error) {
	if s == nil {
		return templates.Template{}, errors.New("guided: session is required")
	}
	if len(f.catalog) == 0 {
		return templates.Template{}, errors.New("guided: no templates available")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tpl, err := f.selectTemplate(ctx)
	if err != nil {
		return templates.Template{}, err
	}

	// Applying the template wipes the CV, so capture identity values first
	// and offer them back as prompt defaults.
	prior := make(map[string]string, len(tpl.GuidedFields))
	for _, field := range tpl.GuidedFields {
		if value, ok := s.Identity(field.Key); ok {
			prior[field.Key] = value
		}
	}
	tpl.Apply(s)

	if err := f.collectIdentity(ctx, s, tpl, prior); err != nil {
		return tpl, err
	}
	if err := f.collectSections(ctx, s, tpl); err != nil {
		return tpl, err
	}
	return tpl, nil
}

func (f *Flow) selectTemplate(ctx context.Context) (templates.Template, error) {
	options := make([]string, 0, len(f.catalog))
	for _, tpl := range f.catalog {
		options = append(options, fmt.Sprintf("%s: %s", tpl.Name, tpl.Description))
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "Select a template", Options: options})
	if err != nil {
		return templates.Template{}, err
	}
	if idx < 0 || idx >= len(f.catalog) {
		return templates.Template{}, fmt.Errorf("guided: template choice %d out of range", idx)
	}
	tpl := f.catalog[idx]
	summary := fmt.Sprintf("Using %s. Recommended sections: %s.", tpl.Name, strings.Join(tpl.RecommendedSections, ", "))
	if err := f.driver.Info(ctx, summary); err != nil {
		return templates.Template{}, err
	}
	return tpl, nil
}

func (f *Flow) collectIdentity(ctx context.Context, s *document.Session, tpl templates.Template, prior map[string]string) error {
	for _, field := range tpl.GuidedFields {
		message := field.Label
		if field.Required {
			message += " *"
		}
		value, err := f.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     prior[field.Key],
			Placeholder: placeholderFor(field.Input),
		})
		if err != nil {
			return err
		}
		s.SetIdentity(field.Key, value)
	}
	return nil
}

func (f *Flow) collectSections(ctx context.Context, s *document.Session, tpl templates.Template) error {
	for _, section := range tpl.RecommendedSections {
		kind := f.registry.Lookup(schema.KindForSection(section))
		label := schema.Label(section)
		added := 0
		for {
			message := fmt.Sprintf("Add %s entry?", label)
			if added > 0 {
				message = fmt.Sprintf("Add another %s entry?", label)
			}
			more, err := f.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: added == 0})
			if err != nil {
				return err
			}
			if !more {
				break
			}
			entry := s.AddEntry(section, kind.Name)
			for _, spec := range kind.Fields {
				if err := f.promptField(ctx, s, entry, spec); err != nil {
					return err
				}
			}
			added++
		}
	}
	return nil
}

func (f *Flow) promptField(ctx context.Context, s *document.Session, entry *document.Entry, spec schema.FieldSpec) error {
	switch spec.Type {
	case schema.ValueTypeList:
		raw, err := f.driver.TextArea(ctx, TextAreaConfig{Message: spec.Label, Help: spec.Help})
		if err != nil {
			return err
		}
		s.SetListField(entry, spec.Key, raw)
	case schema.ValueTypeMultiline:
		value, err := f.driver.TextArea(ctx, TextAreaConfig{Message: spec.Label, Help: spec.Help})
		if err != nil {
			return err
		}
		s.SetField(entry, spec.Key, value)
	default:
		value, err := f.driver.Input(ctx, InputConfig{Message: spec.Label, Help: spec.Help})
		if err != nil {
			return err
		}
		s.SetField(entry, spec.Key, value)
	}
	return nil
}

func placeholderFor(kind templates.InputKind) string {
	switch kind {
	case templates.InputEmail:
		return "example@email.com"
	case templates.InputURL:
		return "https://example.com"
	}
	return ""
}
