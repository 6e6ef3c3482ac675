package templates

import "github.com/goliatone/go-cvgen/pkg/document"

// InputKind hints how a guided identity field should be captured.
type InputKind string

const (
	InputText  InputKind = "text"
	InputEmail InputKind = "email"
	InputURL   InputKind = "url"
)

// GuidedField is one identity field a template asks for up front.
type GuidedField struct {
	Key      string
	Label    string
	Input    InputKind
	Required bool
}

// Template is a starting point for a guided session: a design preset, the
// sections worth filling in first, and the identity fields to ask for.
type Template struct {
	ID                  string
	Name                string
	Description         string
	Design              document.Design
	RecommendedSections []string
	GuidedFields        []GuidedField
}

// Apply instantiates the template on the session. This is destructive: the
// CV is reset and the template design replaces the current one. Locale and
// settings keep their values.
func (t Template) Apply(s *document.Session) {
	if s == nil {
		return
	}
	s.ApplyTemplate(t.Design)
}

// Clone returns a copy sharing nothing with the original.
func (t Template) Clone() Template {
	out := t
	out.Design = t.Design.Clone()
	if t.RecommendedSections != nil {
		out.RecommendedSections = make([]string, len(t.RecommendedSections))
		copy(out.RecommendedSections, t.RecommendedSections)
	}
	if t.GuidedFields != nil {
		out.GuidedFields = make([]GuidedField, len(t.GuidedFields))
		copy(out.GuidedFields, t.GuidedFields)
	}
	return out
}

var builtins = []Template{
	{
		ID:          "classic",
		Name:        "Classic Theme",
		Description: "Traditional timeline-based CV with clean typography",
		Design:      document.Design{Theme: "classic", Color: "blue"},
		RecommendedSections: []string{
			"education", "experience", "skills", "projects",
		},
		GuidedFields: []GuidedField{
			{Key: "name", Label: "Full Name", Input: InputText, Required: true},
			{Key: "headline", Label: "Professional Headline", Input: InputText},
			{Key: "location", Label: "Location", Input: InputText},
			{Key: "email", Label: "Email", Input: InputEmail, Required: true},
			{Key: "phone", Label: "Phone", Input: InputText},
			{Key: "website", Label: "Website", Input: InputURL},
		},
	},
	{
		ID:          "moderncv",
		Name:        "Modern CV",
		Description: "Contemporary design with accent colors",
		Design:      document.Design{Theme: "moderncv", Color: "purple"},
		RecommendedSections: []string{
			"summary", "experience", "education", "skills",
		},
		GuidedFields: []GuidedField{
			{Key: "name", Label: "Full Name", Input: InputText, Required: true},
			{Key: "headline", Label: "Professional Title", Input: InputText},
			{Key: "email", Label: "Email", Input: InputEmail, Required: true},
		},
	},
	{
		ID:          "sb2nov",
		Name:        "SB2Nov",
		Description: "Compact, information-dense layout",
		Design:      document.Design{Theme: "sb2nov"},
		RecommendedSections: []string{
			"education", "experience", "projects", "skills",
		},
		GuidedFields: []GuidedField{
			{Key: "name", Label: "Full Name", Input: InputText, Required: true},
			{Key: "email", Label: "Email", Input: InputEmail, Required: true},
			{Key: "phone", Label: "Phone", Input: InputText},
		},
	},
}

// All returns the built-in templates in declaration order. The returned
// templates are copies; mutating them does not affect the catalog.
func All() []Template {
	out := make([]Template, len(builtins))
	for i, t := range builtins {
		out[i] = t.Clone()
	}
	return out
}

// IDs returns the built-in template identifiers in declaration order.
func IDs() []string {
	ids := make([]string, 0, len(builtins))
	for _, t := range builtins {
		ids = append(ids, t.ID)
	}
	return ids
}

// Lookup retrieves a template by id.
func Lookup(id string) (Template, bool) {
	for _, t := range builtins {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return Template{}, false
}
