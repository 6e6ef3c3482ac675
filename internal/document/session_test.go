package document

import (
	"testing"

	"github.com/goliatone/go-cvgen/pkg/schema"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()

	if s.Design.Theme != DefaultTheme {
		t.Fatalf("expected default theme, got %q", s.Design.Theme)
	}
	if s.Locale.Language != DefaultLanguage {
		t.Fatalf("expected default language, got %q", s.Locale.Language)
	}
	if !s.Settings.Empty() {
		t.Fatalf("expected empty settings")
	}
	if s.Revision() != 0 {
		t.Fatalf("expected revision 0, got %d", s.Revision())
	}
	if s.Started() {
		t.Fatalf("expected unnamed session to not be started")
	}
}

func TestSessionStartedAfterNaming(t *testing.T) {
	s := NewSession()
	if !s.SetIdentity("name", "Jane Doe") {
		t.Fatalf("expected name to be a known identity key")
	}
	if !s.Started() {
		t.Fatalf("expected named session to be started")
	}
	if s.SetIdentity("nickname", "JD") {
		t.Fatalf("expected unknown identity key to be rejected")
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	s := NewSession()
	for _, key := range []string{"name", "headline", "location", "email", "phone", "website", "photo"} {
		if !s.SetIdentity(key, "v-"+key) {
			t.Fatalf("expected %q to be a known identity key", key)
		}
		got, ok := s.Identity(key)
		if !ok || got != "v-"+key {
			t.Fatalf("Identity(%q) = %q, %v", key, got, ok)
		}
	}
	if _, ok := s.Identity("nickname"); ok {
		t.Fatalf("expected unknown identity key to report false")
	}
}

func TestAddEntryCreatesSectionOnDemand(t *testing.T) {
	s := NewSession()
	before := s.Revision()

	e := s.AddEntry("experience", schema.KindExperience)
	if e == nil || e.ID() == "" {
		t.Fatalf("expected a new entry with an id")
	}
	sec := s.CV.Section("experience")
	if sec == nil {
		t.Fatalf("expected section to be created")
	}
	if len(sec.Entries) != 1 || sec.Entries[0] != e {
		t.Fatalf("expected entry appended to section")
	}
	if s.Revision() <= before {
		t.Fatalf("expected revision bump")
	}
}

func TestRemoveLastEntryRemovesSection(t *testing.T) {
	s := NewSession()
	e := s.AddEntry("projects", schema.KindNormal)

	if !s.RemoveEntry("projects", e.ID()) {
		t.Fatalf("expected removal to succeed")
	}
	if s.CV.HasSection("projects") {
		t.Fatalf("expected empty section to be removed")
	}
}

func TestRemoveEntryKeepsPopulatedSection(t *testing.T) {
	s := NewSession()
	first := s.AddEntry("projects", schema.KindNormal)
	second := s.AddEntry("projects", schema.KindNormal)

	if !s.RemoveEntry("projects", first.ID()) {
		t.Fatalf("expected removal to succeed")
	}
	sec := s.CV.Section("projects")
	if sec == nil {
		t.Fatalf("expected section to survive")
	}
	if len(sec.Entries) != 1 || sec.Entries[0] != second {
		t.Fatalf("expected remaining entry kept in order")
	}
}

func TestRemoveEntryUnknownLeavesRevision(t *testing.T) {
	s := NewSession()
	s.AddEntry("projects", schema.KindNormal)
	before := s.Revision()

	if s.RemoveEntry("projects", "no-such-id") {
		t.Fatalf("expected unknown id to fail")
	}
	if s.RemoveEntry("missing", "no-such-id") {
		t.Fatalf("expected unknown section to fail")
	}
	if s.Revision() != before {
		t.Fatalf("expected revision untouched, got %d", s.Revision())
	}
}

func TestSetListFieldSplitsAndTrims(t *testing.T) {
	s := NewSession()
	e := s.AddEntry("experience", schema.KindExperience)

	s.SetListField(e, "highlights", "a\n\nb \n")

	got := e.GetList("highlights")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected list: %v", got)
	}
}

func TestAddCustomField(t *testing.T) {
	s := NewSession()
	e := s.AddEntry("experience", schema.KindExperience)

	if err := s.AddCustomField(e, " revenue "); err != nil {
		t.Fatalf("expected custom field to be added: %v", err)
	}
	v, ok := e.Get("revenue")
	if !ok || v != "" {
		t.Fatalf("expected empty seeded value, got %#v", v)
	}

	if err := s.AddCustomField(e, "revenue"); err == nil {
		t.Fatalf("expected duplicate key to fail")
	}
	if err := s.AddCustomField(e, "  "); err == nil {
		t.Fatalf("expected blank key to fail")
	}
	if err := s.AddCustomField(e, "_secret"); err == nil {
		t.Fatalf("expected reserved key to fail")
	}
	if err := s.AddCustomField(nil, "x"); err == nil {
		t.Fatalf("expected nil entry to fail")
	}
}

func TestAddSchemaFieldSeedsZeroValue(t *testing.T) {
	s := NewSession()
	e := s.AddEntry("education", schema.KindEducation)
	kind := schema.Default().Lookup(schema.KindEducation)

	spec, _ := kind.Field("highlights")
	s.AddSchemaField(e, spec)
	if v, ok := e.Get("highlights"); !ok {
		t.Fatalf("expected field seeded")
	} else if list, ok := v.([]string); !ok || len(list) != 0 {
		t.Fatalf("expected empty list, got %#v", v)
	}

	e.Set("highlights", []string{"kept"})
	s.AddSchemaField(e, spec)
	if got := e.GetList("highlights"); len(got) != 1 || got[0] != "kept" {
		t.Fatalf("expected existing value kept, got %v", got)
	}
}

func TestApplyTemplateResetsCVKeepsLocale(t *testing.T) {
	s := NewSession()
	s.SetIdentity("name", "Jane")
	s.AddEntry("experience", schema.KindExperience)
	s.Locale.Language = "spanish"

	design := Design{Theme: "moderncv", Color: "purple", Templates: Pairs{{Key: "TextEntry", Value: "snippet"}}}
	s.ApplyTemplate(design)

	if s.CV.Name != "" || len(s.CV.Sections) != 0 {
		t.Fatalf("expected CV reset")
	}
	if s.Design.Theme != "moderncv" || s.Design.Color != "purple" {
		t.Fatalf("unexpected design: %+v", s.Design)
	}
	if s.Locale.Language != "spanish" {
		t.Fatalf("expected locale kept, got %q", s.Locale.Language)
	}

	design.Templates[0].Value = "mutated"
	if got, _ := s.Design.Templates.Get("TextEntry"); got != "snippet" {
		t.Fatalf("expected design cloned, got %q", got)
	}
}

func TestApplyTemplateFillsMissingTheme(t *testing.T) {
	s := NewSession()
	s.ApplyTemplate(Design{Color: "red"})
	if s.Design.Theme != DefaultTheme {
		t.Fatalf("expected default theme, got %q", s.Design.Theme)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewSession()
	s.SetIdentity("name", "Jane")
	s.AddEntry("skills", schema.KindOneLine)
	s.Locale.Language = "french"
	s.Settings.CurrentDate = "2024-01-01"

	s.Reset()

	if s.Started() || len(s.CV.Sections) != 0 {
		t.Fatalf("expected fresh CV")
	}
	if s.Design.Theme != DefaultTheme || s.Locale.Language != DefaultLanguage {
		t.Fatalf("expected defaults restored")
	}
	if !s.Settings.Empty() {
		t.Fatalf("expected settings cleared")
	}
}

func TestAdoptAssignsFreshIDsAndDefaults(t *testing.T) {
	cv := NewCV()
	cv.Name = "Imported"
	sec := cv.EnsureSection("experience")
	e := NewEntry(schema.KindExperience)
	e.Set("company", "Acme")
	sec.Entries = append(sec.Entries, e)
	oldID := e.ID()

	s := NewSession()
	s.Adopt(cv, Design{}, Locale{}, Settings{})

	if s.CV.Name != "Imported" {
		t.Fatalf("expected adopted cv")
	}
	if e.ID() == oldID {
		t.Fatalf("expected a fresh id after adopt")
	}
	if s.Design.Theme != DefaultTheme {
		t.Fatalf("expected default theme filled, got %q", s.Design.Theme)
	}
	if s.Locale.Language != DefaultLanguage {
		t.Fatalf("expected default language filled, got %q", s.Locale.Language)
	}
}

func TestCVAsMapShape(t *testing.T) {
	s := NewSession()
	s.SetIdentity("name", "Jane")
	s.CV.SocialNetworks = append(s.CV.SocialNetworks, SocialNetwork{Network: "GitHub", Username: "jane"})
	e := s.AddEntry("experience", schema.KindExperience)
	s.SetField(e, "company", "Acme")

	m := s.CV.AsMap()
	for _, key := range []string{"name", "headline", "location", "email", "phone", "website", "photo", "social_networks", "custom_connections", "sections"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("expected key %q present", key)
		}
	}

	sections, ok := m["sections"].(map[string]any)
	if !ok {
		t.Fatalf("expected sections map, got %T", m["sections"])
	}
	entries, ok := sections["experience"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected one experience entry, got %#v", sections["experience"])
	}
	entry, ok := entries[0].(map[string]any)
	if !ok {
		t.Fatalf("expected entry map, got %T", entries[0])
	}
	if entry[KeyKind] != schema.KindExperience {
		t.Fatalf("expected kind tag, got %v", entry[KeyKind])
	}
	if entry["company"] != "Acme" {
		t.Fatalf("expected company value, got %v", entry["company"])
	}
}

func TestCVCloneIsIndependent(t *testing.T) {
	cv := NewCV()
	cv.Name = "Jane"
	sec := cv.EnsureSection("skills")
	e := NewEntry(schema.KindOneLine)
	e.Set("label", "Languages")
	sec.Entries = append(sec.Entries, e)

	clone := cv.Clone()
	e.Set("label", "Changed")
	cv.Name = "Other"

	if clone.Name != "Jane" {
		t.Fatalf("expected clone name untouched, got %q", clone.Name)
	}
	cloneSec := clone.Section("skills")
	if cloneSec == nil || len(cloneSec.Entries) != 1 {
		t.Fatalf("expected cloned section with one entry")
	}
	if got := cloneSec.Entries[0].GetString("label"); got != "Languages" {
		t.Fatalf("expected cloned entry untouched, got %q", got)
	}
}
