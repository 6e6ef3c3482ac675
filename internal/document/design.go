package document

// Defaults applied when nothing is configured. These mirror what the
// downstream renderer assumes for a document without design or locale.
const (
	DefaultTheme    = "classic"
	DefaultLanguage = "english"
)

// Design selects the theme and visual options for rendering. Templates maps
// entry kind names to custom typesetting snippets the renderer substitutes;
// the snippets pass through untouched.
type Design struct {
	Theme                string
	Color                string
	Templates            Pairs
	DisablePageNumbering *bool
}

// DefaultDesign returns the design used when nothing is configured.
func DefaultDesign() Design {
	return Design{Theme: DefaultTheme}
}

// Clone returns a copy sharing nothing with the original.
func (d Design) Clone() Design {
	out := d
	out.Templates = d.Templates.Clone()
	if d.DisablePageNumbering != nil {
		v := *d.DisablePageNumbering
		out.DisablePageNumbering = &v
	}
	return out
}

// Themes lists the theme identifiers the downstream renderer ships with.
func Themes() []string {
	return []string{"classic", "moderncv", "sb2nov", "engineeringresumes"}
}

// Colors lists the color presets offered by pickers. Any CSS color name is
// accepted in Design.Color; these are the short list.
func Colors() []string {
	return []string{"blue", "green", "red", "purple", "orange"}
}

// Locale carries language and date formatting preferences.
type Locale struct {
	Language     string
	DateStyle    string
	Translations Pairs
}

// DefaultLocale returns the locale used when nothing is configured.
func DefaultLocale() Locale {
	return Locale{Language: DefaultLanguage}
}

// Clone returns a copy sharing nothing with the original.
func (l Locale) Clone() Locale {
	out := l
	out.Translations = l.Translations.Clone()
	return out
}

// Languages lists the language presets the picker offers.
func Languages() []string {
	return []string{"english", "spanish", "french", "german", "portuguese"}
}

// Settings carries optional rendering options. A zero Settings is omitted
// from serialized output entirely.
type Settings struct {
	CurrentDate   string
	BoldKeywords  []string
	RenderCommand []Field
}

// Empty reports whether no setting is populated.
func (s Settings) Empty() bool {
	return s.CurrentDate == "" && len(s.BoldKeywords) == 0 && len(s.RenderCommand) == 0
}

// Clone returns a copy sharing nothing with the original.
func (s Settings) Clone() Settings {
	out := s
	if s.BoldKeywords != nil {
		out.BoldKeywords = make([]string, len(s.BoldKeywords))
		copy(out.BoldKeywords, s.BoldKeywords)
	}
	if s.RenderCommand != nil {
		out.RenderCommand = make([]Field, len(s.RenderCommand))
		for i, f := range s.RenderCommand {
			out.RenderCommand[i] = Field{Key: f.Key, Value: CloneValue(f.Value)}
		}
	}
	return out
}
