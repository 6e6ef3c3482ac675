package document

import (
	"github.com/google/uuid"
	"github.com/mohae/deepcopy"

	"github.com/goliatone/go-cvgen/pkg/schema"
)

// Reserved field keys. Keys with the reserved prefix hold UI state and are
// stripped from serialized output.
const (
	ReservedPrefix = "_"
	KeyID          = "_ui_id"
	KeyKind        = "_type"
)

// Field is one key/value pair inside an entry. Session-created values are
// strings or string lists; imported documents may carry any YAML scalar or
// nested shape.
type Field struct {
	Key   string
	Value any
}

// Entry is a single item in a CV section. Fields keep insertion order, which
// is also their order in serialized output. The id exists for UI selection
// and deletion and never appears in serialized documents.
type Entry struct {
	id     string
	kind   string
	fields []Field
}

// NewEntry creates an entry of the given kind with a fresh unique id.
func NewEntry(kind string) *Entry {
	return &Entry{id: uuid.NewString(), kind: kind}
}

// ID returns the internal identifier assigned at creation.
func (e *Entry) ID() string {
	return e.id
}

// Kind returns the entry kind name, falling back to the default kind for
// entries created without one.
func (e *Entry) Kind() string {
	if e.kind == "" {
		return schema.DefaultKind
	}
	return e.kind
}

// Fields returns the entry fields in insertion order. The slice is a copy;
// values are shared.
func (e *Entry) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Get returns the value stored under key.
func (e *Entry) Get(key string) (any, bool) {
	for _, f := range e.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// GetString returns the string value under key, or "" when the field is
// absent or not a string.
func (e *Entry) GetString(key string) string {
	v, ok := e.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetList returns the list value under key as strings. Imported entries may
// store lists as []any; non-string items are skipped. Absent and non-list
// values yield nil.
func (e *Entry) GetList(key string) []string {
	v, ok := e.Get(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		var out []string
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Set stores value under key, updating an existing field in place or
// appending a new one at the end.
func (e *Entry) Set(key string, value any) {
	for i := range e.fields {
		if e.fields[i].Key == key {
			e.fields[i].Value = value
			return
		}
	}
	e.fields = append(e.fields, Field{Key: key, Value: value})
}

// SetList parses raw multiline text into a list value: one item per line,
// trimmed, blank lines dropped.
func (e *Entry) SetList(key, raw string) {
	e.Set(key, SplitList(raw))
}

// Remove deletes the field stored under key.
func (e *Entry) Remove(key string) bool {
	for i := range e.fields {
		if e.fields[i].Key == key {
			e.fields = append(e.fields[:i], e.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether the entry carries the field key.
func (e *Entry) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// EnsureField adds the field with its zero value when absent, leaving
// existing values untouched.
func (e *Entry) EnsureField(spec schema.FieldSpec) {
	if e.Has(spec.Key) {
		return
	}
	e.Set(spec.Key, spec.Type.Zero())
}

// Clone returns a deep copy sharing nothing with the original, id included.
func (e *Entry) Clone() *Entry {
	clone := &Entry{id: e.id, kind: e.kind, fields: make([]Field, len(e.fields))}
	for i, f := range e.fields {
		clone.fields[i] = Field{Key: f.Key, Value: CloneValue(f.Value)}
	}
	return clone
}

// AsMap returns the entry as a generic map including the internal id and
// kind tag under their reserved keys. This is the session-state shape shared
// with UI layers and the raw validator.
func (e *Entry) AsMap() map[string]any {
	out := make(map[string]any, len(e.fields)+2)
	out[KeyID] = e.id
	out[KeyKind] = e.Kind()
	for _, f := range e.fields {
		out[f.Key] = CloneValue(f.Value)
	}
	return out
}

// CloneValue deep-copies a field value of any shape. Scalars come back
// as-is; maps and lists are copied recursively.
func CloneValue(v any) any {
	if v == nil {
		return nil
	}
	return deepcopy.Copy(v)
}
