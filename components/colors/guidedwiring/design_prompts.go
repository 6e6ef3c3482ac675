// Package guidedwiring adapts the colors component for the guided terminal
// flow: it turns the color catalog plus the theme and language presets into
// select prompts and applies the answers back onto a session.
package guidedwiring

import (
	"context"
	"fmt"

	"github.com/goliatone/go-cvgen/components/colors"
	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/guided"
)

// noneChoice is the first color option; picking it clears the color so the
// theme default applies.
const noneChoice = "(theme default)"

// CustomizeDesign walks the user through theme, color, and language, seeded
// with the session's current values. Component overrides (for example
// colors.WithCatalog) narrow the color list.
func CustomizeDesign(ctx context.Context, driver guided.PromptDriver, s *document.Session, fns ...colors.OptionFn) error {
	if driver == nil {
		return fmt.Errorf("guidedwiring: driver is required")
	}
	if s == nil {
		return fmt.Errorf("guidedwiring: session is required")
	}

	themes := document.Themes()
	idx, err := driver.Select(ctx, guided.SelectConfig{
		Message:      "Theme",
		Options:      themes,
		DefaultIndex: clampIndex(indexOf(themes, s.Design.Theme)),
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(themes) {
		s.Design.Theme = themes[idx]
	}

	catalog, err := colorCatalog(fns...)
	if err != nil {
		return err
	}
	choices := append([]string{noneChoice}, catalog...)
	current := 0
	if s.Design.Color != "" {
		if i := indexOf(catalog, s.Design.Color); i >= 0 {
			current = i + 1
		}
	}
	idx, err = driver.Select(ctx, guided.SelectConfig{
		Message:      "Color",
		Options:      choices,
		DefaultIndex: current,
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	switch {
	case idx == 0:
		s.Design.Color = ""
	case idx > 0 && idx <= len(catalog):
		s.Design.Color = catalog[idx-1]
	}

	languages := document.Languages()
	idx, err = driver.Select(ctx, guided.SelectConfig{
		Message:      "Language",
		Options:      languages,
		DefaultIndex: clampIndex(indexOf(languages, s.Locale.Language)),
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(languages) {
		s.Locale.Language = languages[idx]
	}

	s.Touch()
	return nil
}

func colorCatalog(fns ...colors.OptionFn) ([]string, error) {
	opts := colors.NewOptions(fns...)
	if opts.Catalog != nil {
		return opts.Catalog, nil
	}
	catalog, err := colors.DefaultColors()
	if err != nil {
		return nil, fmt.Errorf("guidedwiring: load color catalog: %w", err)
	}
	return catalog, nil
}

func indexOf(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return -1
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	return i
}
