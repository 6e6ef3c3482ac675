package rendercv

import (
	"github.com/goliatone/go-cvgen/pkg/document"
)

// Document is the renderer-ready view of a session: the CV content plus the
// design, locale, and settings blocks that accompany it on the wire.
type Document struct {
	CV       *document.CV
	Design   document.Design
	Locale   document.Locale
	Settings document.Settings
}

// Compose assembles a Document from its parts, cloning each one so later
// session edits cannot leak into an encode already in flight. Missing theme
// and language values are filled with the defaults the renderer expects.
func Compose(cv *document.CV, design document.Design, locale document.Locale, settings document.Settings) Document {
	if cv == nil {
		cv = document.NewCV()
	}
	doc := Document{
		CV:       cv.Clone(),
		Design:   design.Clone(),
		Locale:   locale.Clone(),
		Settings: settings.Clone(),
	}
	if doc.Design.Theme == "" {
		doc.Design.Theme = document.DefaultTheme
	}
	if doc.Locale.Language == "" {
		doc.Locale.Language = document.DefaultLanguage
	}
	return doc
}

// FromSession composes a Document from the session's current state.
func FromSession(s *document.Session) Document {
	if s == nil {
		return Compose(nil, document.Design{}, document.Locale{}, document.Settings{})
	}
	return Compose(s.CV, s.Design, s.Locale, s.Settings)
}

// Install adopts the document into the session: the CV, design, locale, and
// settings replace the session's, and every entry receives a fresh id.
func (d Document) Install(s *document.Session) {
	if s == nil {
		return
	}
	s.Adopt(d.CV, d.Design, d.Locale, d.Settings)
}

// Clone returns a copy sharing nothing with the original.
func (d Document) Clone() Document {
	return Compose(d.CV, d.Design, d.Locale, d.Settings)
}
