package validation_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-cvgen/pkg/validation"
)

func TestExternalSchemaParses(t *testing.T) {
	if _, err := validation.ExternalSchema(); err != nil {
		t.Fatalf("expected embedded schema to parse: %v", err)
	}
	if len(validation.ExternalSchemaJSON()) == 0 {
		t.Fatalf("expected embedded schema bytes")
	}
}

func TestCheckExternalAcceptsMinimalDocument(t *testing.T) {
	doc := []byte("cv:\n  name: Jane Doe\n")
	if issues := validation.CheckExternal(doc); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestCheckExternalAcceptsFullDocument(t *testing.T) {
	doc := []byte(`cv:
  name: Jane Doe
  email: jane@example.com
  social_networks:
    - network: GitHub
      username: jane
  sections:
    experience:
      - company: Acme
        position: Engineer
    quote:
      - A plain string entry
design:
  theme: classic
  color: blue
locale:
  language: english
`)
	if issues := validation.CheckExternal(doc); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestCheckExternalRejectsMissingCV(t *testing.T) {
	doc := []byte("design:\n  theme: classic\n")
	issues := validation.CheckExternal(doc)
	if len(issues) == 0 {
		t.Fatalf("expected issues for missing cv block")
	}
	if !strings.Contains(strings.Join(issues, "\n"), "cv") {
		t.Fatalf("expected issue to mention cv, got %v", issues)
	}
}

func TestCheckExternalRejectsNonArraySection(t *testing.T) {
	doc := []byte(`cv:
  name: Jane
  sections:
    skills: not a list
`)
	if issues := validation.CheckExternal(doc); len(issues) == 0 {
		t.Fatalf("expected issues for scalar section")
	}
}

func TestCheckExternalEmptyInput(t *testing.T) {
	issues := validation.CheckExternal(nil)
	if len(issues) != 1 || issues[0] != "document is empty" {
		t.Fatalf("unexpected issues: %v", issues)
	}
}

func TestCheckExternalUnparseableInput(t *testing.T) {
	issues := validation.CheckExternal([]byte("{invalid"))
	if len(issues) == 0 {
		t.Fatalf("expected parse issue")
	}
	if !strings.Contains(issues[0], "parse YAML") {
		t.Fatalf("expected parse YAML issue, got %v", issues)
	}
}
