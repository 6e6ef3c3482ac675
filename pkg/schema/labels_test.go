package schema_test

import (
	"testing"

	"github.com/goliatone/go-cvgen/pkg/schema"
)

func TestLabel(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"thesis_title", "Thesis Title"},
		{"thesisTitle", "Thesis Title"},
		{"start-date", "Start Date"},
		{"doi", "Doi"},
		{"GPA4", "Gpa 4"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := schema.Label(tc.key); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.key, tc.want, got)
		}
	}
}
