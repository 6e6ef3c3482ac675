package document

import internaldocument "github.com/goliatone/go-cvgen/internal/document"

// Reserved field keys carried by entries as UI state.
const (
	ReservedPrefix = internaldocument.ReservedPrefix
	KeyID          = internaldocument.KeyID
	KeyKind        = internaldocument.KeyKind
)

// Defaults applied when nothing is configured.
const (
	DefaultTheme    = internaldocument.DefaultTheme
	DefaultLanguage = internaldocument.DefaultLanguage
)

type Field = internaldocument.Field
type Entry = internaldocument.Entry
type SocialNetwork = internaldocument.SocialNetwork
type Pair = internaldocument.Pair
type Pairs = internaldocument.Pairs
type Section = internaldocument.Section
type CV = internaldocument.CV
type Design = internaldocument.Design
type Locale = internaldocument.Locale
type Settings = internaldocument.Settings
type Session = internaldocument.Session

// NewSession returns an empty session with default design and locale.
func NewSession() *Session {
	return internaldocument.NewSession()
}

// NewCV returns an empty CV.
func NewCV() *CV {
	return internaldocument.NewCV()
}

// NewEntry creates an entry of the given kind with a fresh unique id.
func NewEntry(kind string) *Entry {
	return internaldocument.NewEntry(kind)
}

// DefaultDesign returns the design used when nothing is configured.
func DefaultDesign() Design {
	return internaldocument.DefaultDesign()
}

// DefaultLocale returns the locale used when nothing is configured.
func DefaultLocale() Locale {
	return internaldocument.DefaultLocale()
}

// Themes lists the theme identifiers the downstream renderer ships with.
func Themes() []string {
	return internaldocument.Themes()
}

// Colors lists the color presets offered by pickers.
func Colors() []string {
	return internaldocument.Colors()
}

// Languages lists the language presets the picker offers.
func Languages() []string {
	return internaldocument.Languages()
}

// SplitList turns raw multiline text into list items: one item per line,
// trimmed, blank lines dropped.
func SplitList(raw string) []string {
	return internaldocument.SplitList(raw)
}

// JoinList renders a list value back into multiline text, one item per line.
func JoinList(items []string) string {
	return internaldocument.JoinList(items)
}

// CloneValue deep-copies a field value of any shape.
func CloneValue(v any) any {
	return internaldocument.CloneValue(v)
}
