package templates_test

import (
	"testing"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/schema"
	"github.com/goliatone/go-cvgen/pkg/templates"
)

func TestCatalogIDs(t *testing.T) {
	want := []string{"classic", "moderncv", "sb2nov"}
	got := templates.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("id %d mismatch: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLookupClassic(t *testing.T) {
	tpl, ok := templates.Lookup("classic")
	if !ok {
		t.Fatalf("expected classic template")
	}
	if tpl.Design.Theme != "classic" || tpl.Design.Color != "blue" {
		t.Fatalf("unexpected design: %+v", tpl.Design)
	}
	if len(tpl.RecommendedSections) != 4 || tpl.RecommendedSections[0] != "education" {
		t.Fatalf("unexpected sections: %v", tpl.RecommendedSections)
	}
	if len(tpl.GuidedFields) != 6 {
		t.Fatalf("expected 6 guided fields, got %d", len(tpl.GuidedFields))
	}
	if !tpl.GuidedFields[0].Required || tpl.GuidedFields[0].Key != "name" {
		t.Fatalf("expected required name field first, got %+v", tpl.GuidedFields[0])
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := templates.Lookup("corporate"); ok {
		t.Fatalf("expected unknown template to be absent")
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	tpl, _ := templates.Lookup("sb2nov")
	tpl.RecommendedSections[0] = "mutated"
	tpl.Design.Color = "neon"

	again, _ := templates.Lookup("sb2nov")
	if again.RecommendedSections[0] != "education" {
		t.Fatalf("expected catalog untouched, got %q", again.RecommendedSections[0])
	}
	if again.Design.Color != "" {
		t.Fatalf("expected catalog design untouched, got %q", again.Design.Color)
	}
}

func TestApplyResetsSessionAndSetsDesign(t *testing.T) {
	s := document.NewSession()
	s.SetIdentity("name", "Old Name")
	s.AddEntry("experience", schema.KindExperience)
	s.Locale.Language = "german"

	tpl, _ := templates.Lookup("classic")
	tpl.Apply(s)

	if s.CV.Name != "" || len(s.CV.Sections) != 0 {
		t.Fatalf("expected CV reset")
	}
	if s.Design.Theme != "classic" || s.Design.Color != "blue" {
		t.Fatalf("unexpected design after apply: %+v", s.Design)
	}
	if s.Locale.Language != "german" {
		t.Fatalf("expected locale untouched, got %q", s.Locale.Language)
	}
}
