package validation_test

import (
	"testing"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/schema"
	"github.com/goliatone/go-cvgen/pkg/validation"
)

func TestValidateRequiresName(t *testing.T) {
	s := document.NewSession()

	result := validation.Validate(s.CV, nil)
	if result.Valid {
		t.Fatalf("expected unnamed CV to fail")
	}
	if len(result.Errors) != 1 || result.Errors[0] != "CV name is required" {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestValidateAcceptsCompleteDocument(t *testing.T) {
	s := document.NewSession()
	s.SetIdentity("name", "Jane Doe")
	e := s.AddEntry("experience", schema.KindExperience)
	s.SetField(e, "company", "Acme")
	s.SetField(e, "position", "Engineer")

	result := validation.Validate(s.CV, nil)
	if !result.Valid {
		t.Fatalf("expected valid document, got %v", result.Errors)
	}
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	s := document.NewSession()
	s.SetIdentity("name", "Jane Doe")
	first := s.AddEntry("experience", schema.KindExperience)
	s.SetField(first, "company", "Acme")
	s.SetField(first, "position", "Engineer")
	second := s.AddEntry("experience", schema.KindExperience)
	s.SetField(second, "company", "")

	result := validation.Validate(s.CV, nil)
	if result.Valid {
		t.Fatalf("expected validation to fail")
	}
	want := []string{
		"Entry 2 in section 'experience' is missing required field: company",
		"Entry 2 in section 'experience' is missing required field: position",
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), result.Errors)
	}
	for i := range want {
		if result.Errors[i] != want[i] {
			t.Fatalf("error %d mismatch:\nwant %q\ngot  %q", i, want[i], result.Errors[i])
		}
	}
}

func TestValidateEmptyListCountsAsMissing(t *testing.T) {
	s := document.NewSession()
	s.SetIdentity("name", "Jane Doe")
	e := s.AddEntry("publications", schema.KindPublication)
	s.SetField(e, "title", "A Paper")
	s.SetField(e, "authors", []string{})

	result := validation.Validate(s.CV, nil)
	if result.Valid {
		t.Fatalf("expected empty authors list to fail")
	}
	if result.Errors[0] != "Entry 1 in section 'publications' is missing required field: authors" {
		t.Fatalf("unexpected error: %q", result.Errors[0])
	}
}

func TestValidateUnknownKindRequiresNothing(t *testing.T) {
	s := document.NewSession()
	s.SetIdentity("name", "Jane Doe")
	s.AddEntry("misc", "MysteryEntry")

	result := validation.Validate(s.CV, nil)
	if !result.Valid {
		t.Fatalf("expected unknown kind to validate, got %v", result.Errors)
	}
}

func TestValidateMapStructuralLadder(t *testing.T) {
	result := validation.ValidateMap(map[string]any{
		"name":     "Jane",
		"sections": "not a map",
	}, nil)
	if result.Valid {
		t.Fatalf("expected failure")
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Sections must be a dictionary" {
		t.Fatalf("expected immediate abort, got %v", result.Errors)
	}

	result = validation.ValidateMap(map[string]any{
		"name": "Jane",
		"sections": map[string]any{
			"skills": "not a list",
			"talks": []any{
				"not a dictionary",
				map[string]any{document.KeyKind: schema.KindOneLine, "label": "Go", "details": "expert"},
			},
		},
	}, nil)
	if result.Valid {
		t.Fatalf("expected failure")
	}
	want := []string{
		"Section 'skills' must contain a list of entries",
		"Entry 1 in section 'talks' must be a dictionary",
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), result.Errors)
	}
	for i := range want {
		if result.Errors[i] != want[i] {
			t.Fatalf("error %d mismatch:\nwant %q\ngot  %q", i, want[i], result.Errors[i])
		}
	}
}

func TestValidateMapDefaultsKindToNormal(t *testing.T) {
	result := validation.ValidateMap(map[string]any{
		"name": "Jane",
		"sections": map[string]any{
			"projects": []any{
				map[string]any{"summary": "no name field"},
			},
		},
	}, nil)
	if result.Valid {
		t.Fatalf("expected untagged entry to use the default kind")
	}
	if result.Errors[0] != "Entry 1 in section 'projects' is missing required field: name" {
		t.Fatalf("unexpected error: %q", result.Errors[0])
	}
}

func TestValidateMapVisitsSectionsInSortedOrder(t *testing.T) {
	result := validation.ValidateMap(map[string]any{
		"name": "Jane",
		"sections": map[string]any{
			"zoo":   "bad",
			"alpha": "bad",
		},
	}, nil)
	want := []string{
		"Section 'alpha' must contain a list of entries",
		"Section 'zoo' must contain a list of entries",
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), result.Errors)
	}
	for i := range want {
		if result.Errors[i] != want[i] {
			t.Fatalf("error %d mismatch: want %q, got %q", i, want[i], result.Errors[i])
		}
	}
}

func TestValidateMapAgreesWithTypedValidation(t *testing.T) {
	s := document.NewSession()
	e := s.AddEntry("experience", schema.KindExperience)
	s.SetField(e, "company", "Acme")

	typed := validation.Validate(s.CV, nil)
	raw := validation.ValidateMap(s.CV.AsMap(), nil)

	if typed.Valid != raw.Valid {
		t.Fatalf("validity mismatch: typed=%v raw=%v", typed.Valid, raw.Valid)
	}
	if len(typed.Errors) != len(raw.Errors) {
		t.Fatalf("error count mismatch: typed=%v raw=%v", typed.Errors, raw.Errors)
	}
	for i := range typed.Errors {
		if typed.Errors[i] != raw.Errors[i] {
			t.Fatalf("error %d mismatch:\ntyped %q\nraw   %q", i, typed.Errors[i], raw.Errors[i])
		}
	}
}
