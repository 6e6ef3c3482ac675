package validation

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/schema"
)

// Result captures validation outcomes for preview and render gating.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks a typed CV against the entry-kind rules: the CV must be
// named and every entry must carry its kind's required fields. Errors
// accumulate; sections are visited in document order and entries are
// reported 1-indexed.
func Validate(cv *document.CV, reg *schema.Registry) Result {
	if reg == nil {
		reg = schema.Default()
	}
	var errs []string
	if cv == nil || cv.Name == "" {
		errs = append(errs, "CV name is required")
	}
	if cv != nil {
		for _, sec := range cv.Sections {
			for i, entry := range sec.Entries {
				for _, key := range reg.RequiredFields(entry.Kind()) {
					v, ok := entry.Get(key)
					if !ok || isEmptyValue(v) {
						errs = append(errs, missingFieldError(i, sec.Name, key))
					}
				}
			}
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateMap checks the generic session-state shape, covering structural
// problems a typed CV cannot express. A sections value that is not a map
// aborts immediately; malformed sections and entries are reported and
// skipped. Section names are visited in sorted order so results are
// deterministic.
func ValidateMap(root map[string]any, reg *schema.Registry) Result {
	if reg == nil {
		reg = schema.Default()
	}
	var errs []string
	if isEmptyValue(root["name"]) {
		errs = append(errs, "CV name is required")
	}

	rawSections, ok := root["sections"]
	if !ok {
		return Result{Valid: len(errs) == 0, Errors: errs}
	}
	sections, ok := rawSections.(map[string]any)
	if !ok {
		errs = append(errs, "Sections must be a dictionary")
		return Result{Valid: false, Errors: errs}
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entries, ok := sections[name].([]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("Section '%s' must contain a list of entries", name))
			continue
		}
		for i, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				errs = append(errs, fmt.Sprintf("Entry %d in section '%s' must be a dictionary", i+1, name))
				continue
			}
			kind, _ := entry[document.KeyKind].(string)
			if kind == "" {
				kind = schema.DefaultKind
			}
			for _, key := range reg.RequiredFields(kind) {
				v, present := entry[key]
				if !present || isEmptyValue(v) {
					errs = append(errs, missingFieldError(i, name, key))
				}
			}
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func missingFieldError(index int, section, field string) string {
	return fmt.Sprintf("Entry %d in section '%s' is missing required field: %s", index+1, section, field)
}

func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []string:
		return len(value) == 0
	case []any:
		return len(value) == 0
	}
	return false
}
