package schema

import "strings"

// Built-in entry kind names. These match the entry type identifiers the
// downstream renderer understands, so they appear verbatim in serialized
// documents as the internal `_type` tag.
const (
	KindEducation   = "EducationEntry"
	KindExperience  = "ExperienceEntry"
	KindNormal      = "NormalEntry"
	KindPublication = "PublicationEntry"
	KindOneLine     = "OneLineEntry"
	KindBullet      = "BulletEntry"
	KindText        = "TextEntry"
)

// DefaultKind is assumed for entries that carry no kind tag.
const DefaultKind = KindNormal

func builtinKinds() []Kind {
	return []Kind{
		{
			Name: KindEducation,
			Fields: []FieldSpec{
				{Key: "institution", Label: "Institution", Required: true, Type: ValueTypeText},
				{Key: "area", Label: "Area of Study", Required: true, Type: ValueTypeText},
				{Key: "degree", Label: "Degree", Type: ValueTypeText},
				{Key: "date", Label: "Date", Type: ValueTypeText, Help: "Use this OR start_date/end_date"},
				{Key: "start_date", Label: "Start Date", Type: ValueTypeText, Help: "YYYY-MM format"},
				{Key: "end_date", Label: "End Date", Type: ValueTypeText, Help: "YYYY-MM or 'present'"},
				{Key: "location", Label: "Location", Type: ValueTypeText},
				{Key: "summary", Label: "Summary", Type: ValueTypeMultiline},
				{Key: "highlights", Label: "Highlights", Type: ValueTypeList, Help: "One per line"},
			},
		},
		{
			Name: KindExperience,
			Fields: []FieldSpec{
				{Key: "company", Label: "Company", Required: true, Type: ValueTypeText},
				{Key: "position", Label: "Position", Required: true, Type: ValueTypeText},
				{Key: "date", Label: "Date", Type: ValueTypeText, Help: "Use this OR start_date/end_date"},
				{Key: "start_date", Label: "Start Date", Type: ValueTypeText, Help: "YYYY-MM format"},
				{Key: "end_date", Label: "End Date", Type: ValueTypeText, Help: "YYYY-MM or 'present'"},
				{Key: "location", Label: "Location", Type: ValueTypeText},
				{Key: "summary", Label: "Summary", Type: ValueTypeMultiline},
				{Key: "highlights", Label: "Highlights", Type: ValueTypeList, Help: "One per line"},
			},
		},
		{
			Name: KindNormal,
			Fields: []FieldSpec{
				{Key: "name", Label: "Name", Required: true, Type: ValueTypeText},
				{Key: "date", Label: "Date", Type: ValueTypeText},
				{Key: "start_date", Label: "Start Date", Type: ValueTypeText},
				{Key: "end_date", Label: "End Date", Type: ValueTypeText},
				{Key: "location", Label: "Location", Type: ValueTypeText},
				{Key: "summary", Label: "Summary", Type: ValueTypeMultiline},
				{Key: "highlights", Label: "Highlights", Type: ValueTypeList},
			},
		},
		{
			Name: KindPublication,
			Fields: []FieldSpec{
				{Key: "title", Label: "Title", Required: true, Type: ValueTypeText},
				{Key: "authors", Label: "Authors", Required: true, Type: ValueTypeList, Help: "One author per line"},
				{Key: "doi", Label: "DOI", Type: ValueTypeText},
				{Key: "url", Label: "URL", Type: ValueTypeText},
				{Key: "journal", Label: "Journal/Venue", Type: ValueTypeText},
				{Key: "date", Label: "Date", Type: ValueTypeText},
			},
		},
		{
			Name: KindOneLine,
			Fields: []FieldSpec{
				{Key: "label", Label: "Label", Required: true, Type: ValueTypeText},
				{Key: "details", Label: "Details", Required: true, Type: ValueTypeText},
			},
		},
		{
			Name: KindBullet,
			Fields: []FieldSpec{
				{Key: "bullet", Label: "Bullet Point", Required: true, Type: ValueTypeMultiline},
			},
		},
		{
			Name: KindText,
			Fields: []FieldSpec{
				{Key: "text", Label: "Text", Required: true, Type: ValueTypeMultiline},
			},
		},
	}
}

// KindForSection picks the entry kind that best matches a section name, so
// guided flows seed new sections with sensible entry shapes.
func KindForSection(section string) string {
	name := strings.ToLower(section)
	switch {
	case strings.Contains(name, "experience"):
		return KindExperience
	case strings.Contains(name, "education"):
		return KindEducation
	case strings.Contains(name, "skill"):
		return KindOneLine
	default:
		return KindNormal
	}
}
