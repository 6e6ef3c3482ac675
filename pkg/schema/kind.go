package schema

import "strings"

// ValueType is the simplified enum for entry field value shapes.
type ValueType string

const (
	// ValueTypeText is a single line of text.
	ValueTypeText ValueType = "text"
	// ValueTypeMultiline is free-form text spanning multiple lines.
	ValueTypeMultiline ValueType = "textarea"
	// ValueTypeList is an ordered list of short strings.
	ValueTypeList ValueType = "list"
)

// Zero returns the empty value for the type, suitable for seeding a field
// before the user has touched it.
func (t ValueType) Zero() any {
	if t == ValueTypeList {
		return []string{}
	}
	return ""
}

// FieldSpec describes a single field of an entry kind: its key in the
// serialized document, the label shown to users, and how its value is shaped.
type FieldSpec struct {
	Key      string
	Label    string
	Required bool
	Type     ValueType
	Help     string
}

// Kind is the schema for one entry type. Fields keep declaration order, which
// is also the order they appear in serialized output.
type Kind struct {
	Name   string
	Fields []FieldSpec
}

// Field looks up a field spec by key.
func (k Kind) Field(key string) (FieldSpec, bool) {
	for _, f := range k.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Has reports whether the kind declares the field key.
func (k Kind) Has(key string) bool {
	_, ok := k.Field(key)
	return ok
}

// RequiredFields returns the keys of all required fields in declaration order.
func (k Kind) RequiredFields() []string {
	var keys []string
	for _, f := range k.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// DisplayName strips the "Entry" suffix from the kind name, so
// "ExperienceEntry" reads as "Experience" in user-facing listings.
func (k Kind) DisplayName() string {
	return strings.TrimSuffix(k.Name, "Entry")
}
