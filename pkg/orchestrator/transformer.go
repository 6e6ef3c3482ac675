package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-cvgen/pkg/rendercv"
)

// Transformer mutates a composed document after validation and before
// serialization. Implementations can switch themes, inject settings, or
// perform arbitrary rewrites; the document is a private copy, so the
// originating session is never affected.
type Transformer interface {
	Transform(ctx context.Context, doc *rendercv.Document) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *rendercv.Document) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *rendercv.Document) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON
// document, so the same CV can be rendered under different profiles. The
// document shape patches the design, locale, and settings blocks:
//
//	{
//	  "design": {"theme": "sb2nov", "color": "teal"},
//	  "locale": {"language": "french"},
//	  "settings": {"current_date": "2024-01-01", "bold_keywords": ["Go"]}
//	}
//
// Absent and empty fields leave the document value untouched.
type JSONPresetTransformer struct {
	document jsonPresetDocument
}

type jsonPresetDocument struct {
	Design   *jsonDesignPatch   `json:"design"`
	Locale   *jsonLocalePatch   `json:"locale"`
	Settings *jsonSettingsPatch `json:"settings"`
}

type jsonDesignPatch struct {
	Theme                string `json:"theme"`
	Color                string `json:"color"`
	DisablePageNumbering *bool  `json:"disable_page_numbering"`
}

type jsonLocalePatch struct {
	Language  string `json:"language"`
	DateStyle string `json:"date_style"`
}

type jsonSettingsPatch struct {
	CurrentDate  string   `json:"current_date"`
	BoldKeywords []string `json:"bold_keywords"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var preset jsonPresetDocument
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: preset}, nil
}

// NewJSONPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied document.
func (t *JSONPresetTransformer) Transform(ctx context.Context, doc *rendercv.Document) error {
	if doc == nil {
		return errors.New("json preset transformer: document is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if patch := t.document.Design; patch != nil {
		if patch.Theme != "" {
			doc.Design.Theme = patch.Theme
		}
		if patch.Color != "" {
			doc.Design.Color = patch.Color
		}
		if patch.DisablePageNumbering != nil {
			v := *patch.DisablePageNumbering
			doc.Design.DisablePageNumbering = &v
		}
	}
	if patch := t.document.Locale; patch != nil {
		if patch.Language != "" {
			doc.Locale.Language = patch.Language
		}
		if patch.DateStyle != "" {
			doc.Locale.DateStyle = patch.DateStyle
		}
	}
	if patch := t.document.Settings; patch != nil {
		if patch.CurrentDate != "" {
			doc.Settings.CurrentDate = patch.CurrentDate
		}
		if len(patch.BoldKeywords) > 0 {
			doc.Settings.BoldKeywords = append([]string(nil), patch.BoldKeywords...)
		}
	}
	return nil
}
