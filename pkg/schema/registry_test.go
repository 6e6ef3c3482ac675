package schema_test

import (
	"testing"

	"github.com/goliatone/go-cvgen/pkg/schema"
)

func TestDefaultRegistryListsBuiltinKinds(t *testing.T) {
	reg := schema.Default()

	want := []string{
		schema.KindEducation,
		schema.KindExperience,
		schema.KindNormal,
		schema.KindPublication,
		schema.KindOneLine,
		schema.KindBullet,
		schema.KindText,
	}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d kinds, got %d: %v", len(want), len(got), got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("kind %d mismatch: expected %q, got %q", i, name, got[i])
		}
		if !reg.Has(name) {
			t.Fatalf("expected registry to have %q", name)
		}
	}
}

func TestDefaultRegistryIsSharedInstance(t *testing.T) {
	if schema.Default() != schema.Default() {
		t.Fatalf("expected Default to return the same registry")
	}
}

func TestRegistryLookupUnknownKind(t *testing.T) {
	kind := schema.Default().Lookup("MysteryEntry")

	if kind.Name != "MysteryEntry" {
		t.Fatalf("expected lookup to carry the name, got %q", kind.Name)
	}
	if len(kind.Fields) != 0 {
		t.Fatalf("expected unknown kind to have no fields, got %d", len(kind.Fields))
	}
	if req := kind.RequiredFields(); len(req) != 0 {
		t.Fatalf("expected unknown kind to require nothing, got %v", req)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := schema.NewRegistry(
		schema.Kind{Name: "CustomEntry"},
		schema.Kind{Name: "CustomEntry"},
	)
	if err == nil {
		t.Fatalf("expected duplicate kind registration to fail")
	}
}

func TestNewRegistryRejectsUnnamedKind(t *testing.T) {
	if _, err := schema.NewRegistry(schema.Kind{}); err == nil {
		t.Fatalf("expected unnamed kind registration to fail")
	}
}

func TestRequiredFieldsPerKind(t *testing.T) {
	cases := []struct {
		kind string
		want []string
	}{
		{schema.KindEducation, []string{"institution", "area"}},
		{schema.KindExperience, []string{"company", "position"}},
		{schema.KindNormal, []string{"name"}},
		{schema.KindPublication, []string{"title", "authors"}},
		{schema.KindOneLine, []string{"label", "details"}},
		{schema.KindBullet, []string{"bullet"}},
		{schema.KindText, []string{"text"}},
	}

	reg := schema.Default()
	for _, tc := range cases {
		got := reg.RequiredFields(tc.kind)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.kind, tc.want, got)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: required field %d mismatch: expected %q, got %q", tc.kind, i, tc.want[i], got[i])
			}
		}
	}
}

func TestKindForSection(t *testing.T) {
	cases := []struct {
		section string
		want    string
	}{
		{"experience", schema.KindExperience},
		{"Work Experience", schema.KindExperience},
		{"education", schema.KindEducation},
		{"skills", schema.KindOneLine},
		{"Technical Skills", schema.KindOneLine},
		{"projects", schema.KindNormal},
		{"summary", schema.KindNormal},
	}

	for _, tc := range cases {
		if got := schema.KindForSection(tc.section); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.section, tc.want, got)
		}
	}
}
