package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/rendercv"
	"github.com/goliatone/go-cvgen/pkg/schema"
)

// SampleSession builds a deterministic, fully populated session used across
// codec and facade tests. Entry ids are random but never appear in encoded
// output, so golden comparisons stay stable.
func SampleSession(t *testing.T) *document.Session {
	t.Helper()

	s := document.NewSession()
	s.SetIdentity("name", "Jane Doe")
	s.SetIdentity("headline", "Platform Engineer")
	s.SetIdentity("location", "Lisbon, Portugal")
	s.SetIdentity("email", "jane@example.com")
	s.SetIdentity("website", "https://jane.example.com")
	s.CV.SocialNetworks = append(s.CV.SocialNetworks,
		document.SocialNetwork{Network: "GitHub", Username: "janedoe"},
		document.SocialNetwork{Network: "LinkedIn", Username: "jane-doe"},
	)

	exp := s.AddEntry("experience", schema.KindExperience)
	s.SetField(exp, "company", "Acme Corp")
	s.SetField(exp, "position", "Senior Engineer")
	s.SetField(exp, "start_date", "2020-03")
	s.SetField(exp, "end_date", "present")
	s.SetField(exp, "location", "Remote")
	s.SetField(exp, "summary", "Led the platform team.\nOwned the build pipeline.")
	s.SetListField(exp, "highlights", "Cut deploy time in half\nIntroduced canary releases")

	edu := s.AddEntry("education", schema.KindEducation)
	s.SetField(edu, "institution", "University of Lisbon")
	s.SetField(edu, "area", "Computer Science")
	s.SetField(edu, "degree", "MSc")
	s.SetField(edu, "start_date", "2014-09")
	s.SetField(edu, "end_date", "2016-07")

	skills := s.AddEntry("skills", schema.KindOneLine)
	s.SetField(skills, "label", "Languages")
	s.SetField(skills, "details", "Go, Python, SQL")

	s.Design = document.Design{Theme: "classic", Color: "blue"}
	return s
}

// LoadRenderDocument reads a YAML fixture and decodes it, failing the test on
// any error to keep contract tests concise.
func LoadRenderDocument(t *testing.T, path string) rendercv.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document fixture: %v", err)
	}
	doc, err := rendercv.Decode(data)
	if err != nil {
		t.Fatalf("decode document fixture: %v", err)
	}
	return doc
}

// WriteGolden writes arbitrary data to a JSON golden file when UPDATE_GOLDENS
// is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}
