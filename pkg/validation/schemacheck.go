package validation

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	jsonyaml "github.com/invopop/yaml"
)

//go:embed rendercv_schema.json
var externalSchemaJSON []byte

var (
	schemaOnce   sync.Once
	parsedSchema *openapi3.Schema
	parseErr     error
)

// ExternalSchema returns the parsed schema for the top-level document shape
// the downstream renderer accepts.
func ExternalSchema() (*openapi3.Schema, error) {
	schemaOnce.Do(func() {
		var s openapi3.Schema
		if err := s.UnmarshalJSON(externalSchemaJSON); err != nil {
			parseErr = fmt.Errorf("validation: parse embedded schema: %w", err)
			return
		}
		parsedSchema = &s
	})
	return parsedSchema, parseErr
}

// ExternalSchemaJSON returns a copy of the embedded schema document.
func ExternalSchemaJSON() []byte {
	return append([]byte(nil), externalSchemaJSON...)
}

// CheckExternal validates an external YAML document against the embedded
// schema before it is imported into a session. The returned issues are
// human-readable; an empty slice means the document passed.
func CheckExternal(data []byte) []string {
	if len(data) == 0 {
		return []string{"document is empty"}
	}

	var root map[string]any
	if err := jsonyaml.Unmarshal(data, &root); err != nil {
		return []string{fmt.Sprintf("parse YAML: %v", err)}
	}

	schema, err := ExternalSchema()
	if err != nil {
		return []string{err.Error()}
	}

	err = schema.VisitJSON(root, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		issues := make([]string, 0, len(multi))
		for _, item := range multi {
			issues = append(issues, issueText(item))
		}
		return issues
	}
	return []string{issueText(err)}
}

func issueText(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		reason := schemaErr.Reason
		if reason == "" {
			reason = schemaErr.Error()
		}
		if pointer := strings.Join(schemaErr.JSONPointer(), "."); pointer != "" {
			return fmt.Sprintf("%s: %s", pointer, reason)
		}
		return reason
	}
	return strings.TrimSpace(err.Error())
}
