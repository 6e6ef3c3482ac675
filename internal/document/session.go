package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-cvgen/pkg/schema"
)

// Session owns one CV being edited together with its design, locale, and
// settings. Mutations go through session methods, which bump the revision
// counter so consumers know derived views are stale.
type Session struct {
	CV       *CV
	Design   Design
	Locale   Locale
	Settings Settings

	revision uint64
}

// NewSession returns an empty session with default design and locale.
func NewSession() *Session {
	return &Session{
		CV:     NewCV(),
		Design: DefaultDesign(),
		Locale: DefaultLocale(),
	}
}

// Revision returns the change counter. It increases on every mutation and
// never decreases.
func (s *Session) Revision() uint64 {
	return s.revision
}

// Touch marks the session as changed. The mutating helpers call it already;
// callers that edit entries or identity fields directly should call it
// themselves.
func (s *Session) Touch() {
	s.revision++
}

// Started reports whether the CV has a name yet, the gate UIs use before
// unlocking preview and render actions.
func (s *Session) Started() bool {
	return s.CV.Name != ""
}

// SetIdentity sets one of the CV identity fields by its serialized key.
// Unknown keys report false and change nothing.
func (s *Session) SetIdentity(key, value string) bool {
	switch key {
	case "name":
		s.CV.Name = value
	case "headline":
		s.CV.Headline = value
	case "location":
		s.CV.Location = value
	case "email":
		s.CV.Email = value
	case "phone":
		s.CV.Phone = value
	case "website":
		s.CV.Website = value
	case "photo":
		s.CV.Photo = value
	default:
		return false
	}
	s.Touch()
	return true
}

// Identity returns the identity field addressed by the same keys SetIdentity
// accepts. Unknown keys report false.
func (s *Session) Identity(key string) (string, bool) {
	switch key {
	case "name":
		return s.CV.Name, true
	case "headline":
		return s.CV.Headline, true
	case "location":
		return s.CV.Location, true
	case "email":
		return s.CV.Email, true
	case "phone":
		return s.CV.Phone, true
	case "website":
		return s.CV.Website, true
	case "photo":
		return s.CV.Photo, true
	}
	return "", false
}

// AddEntry appends a new entry of the given kind to the named section,
// creating the section on demand.
func (s *Session) AddEntry(section, kind string) *Entry {
	entry := NewEntry(kind)
	sec := s.CV.EnsureSection(section)
	sec.Entries = append(sec.Entries, entry)
	s.Touch()
	return entry
}

// RemoveEntry deletes the entry with the given id from the named section.
// The section itself is removed once it holds no entries, so sections never
// linger empty.
func (s *Session) RemoveEntry(section, id string) bool {
	sec := s.CV.Section(section)
	if sec == nil {
		return false
	}
	if !sec.RemoveEntry(id) {
		return false
	}
	if len(sec.Entries) == 0 {
		s.CV.RemoveSection(section)
	}
	s.Touch()
	return true
}

// FindEntry locates an entry by id across all sections.
func (s *Session) FindEntry(id string) (*Section, *Entry, bool) {
	return s.CV.FindEntry(id)
}

// SetField stores a value on the entry, replacing any existing value.
func (s *Session) SetField(e *Entry, key string, value any) {
	if e == nil {
		return
	}
	e.Set(key, value)
	s.Touch()
}

// SetListField parses raw multiline text into the entry's list field: one
// item per line, trimmed, blank lines dropped.
func (s *Session) SetListField(e *Entry, key, raw string) {
	if e == nil {
		return
	}
	e.SetList(key, raw)
	s.Touch()
}

// RemoveField drops a field from the entry.
func (s *Session) RemoveField(e *Entry, key string) bool {
	if e == nil || !e.Remove(key) {
		return false
	}
	s.Touch()
	return true
}

// AddSchemaField adds one declared-but-absent field to the entry with its
// zero value. Fields already present keep their values.
func (s *Session) AddSchemaField(e *Entry, spec schema.FieldSpec) {
	if e == nil || e.Has(spec.Key) {
		return
	}
	e.EnsureField(spec)
	s.Touch()
}

// AddCustomField adds a user-defined field with an empty value. Keys must be
// non-empty after trimming, not already present, and not use the reserved
// underscore prefix.
func (s *Session) AddCustomField(e *Entry, key string) error {
	if e == nil {
		return errors.New("document: entry is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("document: field key is required")
	}
	if strings.HasPrefix(key, ReservedPrefix) {
		return fmt.Errorf("document: field key %q is reserved", key)
	}
	if e.Has(key) {
		return fmt.Errorf("document: field %q already exists", key)
	}
	e.Set(key, "")
	s.Touch()
	return nil
}

// ApplyTemplate resets the CV and adopts the given design. Locale and
// settings keep their current values.
func (s *Session) ApplyTemplate(design Design) {
	s.CV = NewCV()
	s.Design = design.Clone()
	if s.Design.Theme == "" {
		s.Design.Theme = DefaultTheme
	}
	s.Touch()
}

// Reset clears everything back to a fresh session.
func (s *Session) Reset() {
	s.CV = NewCV()
	s.Design = DefaultDesign()
	s.Locale = DefaultLocale()
	s.Settings = Settings{}
	s.Touch()
}

// Adopt replaces the session contents with an imported document. Every entry
// receives a fresh id. Callers should validate and decode before adopting so
// a failed import never reaches this point.
func (s *Session) Adopt(cv *CV, design Design, locale Locale, settings Settings) {
	if cv == nil {
		cv = NewCV()
	}
	for _, sec := range cv.Sections {
		for _, e := range sec.Entries {
			e.id = uuid.NewString()
		}
	}
	if design.Theme == "" {
		design.Theme = DefaultTheme
	}
	if locale.Language == "" {
		locale.Language = DefaultLanguage
	}
	s.CV = cv
	s.Design = design
	s.Locale = locale
	s.Settings = settings
	s.Touch()
}
