package rendercv

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cvgen/pkg/document"
	"github.com/goliatone/go-cvgen/pkg/schema"
)

// Decode parses renderer YAML back into a Document. The node tree is walked
// directly so section and field order survive, unlike a map round trip.
// Entries carrying a _type tag keep it; untagged entries get a kind inferred
// from their field shape. Plain string entries become text entries. Nested
// mappings inside entry values are kept as raw nodes so a later encode
// reproduces them untouched.
func Decode(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("rendercv: parse: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Document{}, errors.New("rendercv: document is empty")
	}
	top := resolved(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return Document{}, errors.New("rendercv: top level must be a mapping")
	}

	doc := Document{
		CV:     document.NewCV(),
		Locale: document.Locale{},
	}
	sawCV := false
	for i := 0; i+1 < len(top.Content); i += 2 {
		value := resolved(top.Content[i+1])
		switch top.Content[i].Value {
		case "cv":
			cv, err := decodeCV(value)
			if err != nil {
				return Document{}, err
			}
			doc.CV = cv
			sawCV = true
		case "design":
			design, err := decodeDesign(value)
			if err != nil {
				return Document{}, err
			}
			doc.Design = design
		case "locale":
			locale, err := decodeLocale(value)
			if err != nil {
				return Document{}, err
			}
			doc.Locale = locale
		case "settings":
			settings, err := decodeSettings(value)
			if err != nil {
				return Document{}, err
			}
			doc.Settings = settings
		}
	}
	if !sawCV {
		return Document{}, errors.New("rendercv: cv section is required")
	}
	if doc.Design.Theme == "" {
		doc.Design.Theme = document.DefaultTheme
	}
	if doc.Locale.Language == "" {
		doc.Locale.Language = document.DefaultLanguage
	}
	return doc, nil
}

// DecodeMap parses YAML into a plain map for structural validation. Nested
// order is not preserved; use Decode when order matters.
func DecodeMap(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("rendercv: parse: %w", err)
	}
	return out, nil
}

func decodeCV(node *yaml.Node) (*document.CV, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("rendercv: cv must be a mapping")
	}
	cv := document.NewCV()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := resolved(node.Content[i+1])
		switch key {
		case "name":
			cv.Name = scalarString(value)
		case "headline":
			cv.Headline = scalarString(value)
		case "location":
			cv.Location = scalarString(value)
		case "email":
			cv.Email = scalarString(value)
		case "phone":
			cv.Phone = scalarString(value)
		case "website":
			cv.Website = scalarString(value)
		case "photo":
			cv.Photo = scalarString(value)
		case "social_networks":
			if value.Kind != yaml.SequenceNode {
				return nil, errors.New("rendercv: social_networks must be a list")
			}
			for _, item := range value.Content {
				item = resolved(item)
				if item.Kind != yaml.MappingNode {
					continue
				}
				var sn document.SocialNetwork
				if err := item.Decode(&sn); err != nil {
					return nil, fmt.Errorf("rendercv: social network: %w", err)
				}
				cv.SocialNetworks = append(cv.SocialNetworks, sn)
			}
		case "custom_connections":
			if value.Kind != yaml.SequenceNode {
				return nil, errors.New("rendercv: custom_connections must be a list")
			}
			for _, item := range value.Content {
				item = resolved(item)
				if item.Kind != yaml.MappingNode {
					continue
				}
				cv.CustomConnections = append(cv.CustomConnections, decodePairs(item))
			}
		case "sections":
			if err := decodeSections(value, cv); err != nil {
				return nil, err
			}
		}
	}
	return cv, nil
}

func decodeSections(node *yaml.Node, cv *document.CV) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("rendercv: sections must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value := resolved(node.Content[i+1])
		if value.Kind != yaml.SequenceNode {
			return fmt.Errorf("rendercv: section %q must be a list", name)
		}
		section := cv.EnsureSection(name)
		for index, item := range value.Content {
			entry, err := decodeSectionEntry(resolved(item))
			if err != nil {
				return fmt.Errorf("rendercv: entry %d in section %q: %w", index+1, name, err)
			}
			section.Entries = append(section.Entries, entry)
		}
	}
	return nil
}

func decodeSectionEntry(node *yaml.Node) (*document.Entry, error) {
	if node.Kind == yaml.ScalarNode {
		entry := document.NewEntry(schema.KindText)
		entry.Set("text", node.Value)
		return entry, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("must be a mapping or a string")
	}
	kind := ""
	type rawField struct {
		key   string
		value any
	}
	fields := make([]rawField, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := resolved(node.Content[i+1])
		if key == document.KeyKind {
			kind = scalarString(value)
			continue
		}
		if strings.HasPrefix(key, document.ReservedPrefix) {
			continue
		}
		decoded, err := nodeValue(value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, rawField{key: key, value: decoded})
	}
	if kind == "" {
		keys := make(map[string]bool, len(fields))
		for _, field := range fields {
			keys[field.key] = true
		}
		kind = inferKind(keys)
	}
	entry := document.NewEntry(kind)
	for _, field := range fields {
		entry.Set(field.key, field.value)
	}
	return entry, nil
}

// inferKind guesses an entry kind from the fields present, mirroring how the
// renderer discriminates untagged entries. Returns "" when nothing matches;
// the entry then reports the default kind.
func inferKind(keys map[string]bool) string {
	switch {
	case keys["company"] && keys["position"]:
		return schema.KindExperience
	case keys["institution"] && keys["area"]:
		return schema.KindEducation
	case keys["title"] && keys["authors"]:
		return schema.KindPublication
	case keys["label"] && keys["details"]:
		return schema.KindOneLine
	case keys["bullet"]:
		return schema.KindBullet
	case keys["text"]:
		return schema.KindText
	case keys["name"]:
		return schema.KindNormal
	}
	return ""
}

func decodeDesign(node *yaml.Node) (document.Design, error) {
	if node.Kind != yaml.MappingNode {
		return document.Design{}, errors.New("rendercv: design must be a mapping")
	}
	var design document.Design
	for i := 0; i+1 < len(node.Content); i += 2 {
		value := resolved(node.Content[i+1])
		switch node.Content[i].Value {
		case "theme":
			design.Theme = scalarString(value)
		case "templates":
			if value.Kind != yaml.MappingNode {
				return document.Design{}, errors.New("rendercv: design templates must be a mapping")
			}
			design.Templates = decodePairs(value)
		case "color":
			design.Color = scalarString(value)
		case "disable_page_numbering":
			var disabled bool
			if err := value.Decode(&disabled); err != nil {
				return document.Design{}, fmt.Errorf("rendercv: disable_page_numbering: %w", err)
			}
			design.DisablePageNumbering = &disabled
		}
	}
	return design, nil
}

func decodeLocale(node *yaml.Node) (document.Locale, error) {
	if node.Kind != yaml.MappingNode {
		return document.Locale{}, errors.New("rendercv: locale must be a mapping")
	}
	var locale document.Locale
	for i := 0; i+1 < len(node.Content); i += 2 {
		value := resolved(node.Content[i+1])
		switch node.Content[i].Value {
		case "language":
			locale.Language = scalarString(value)
		case "date_style":
			locale.DateStyle = scalarString(value)
		case "translations":
			if value.Kind != yaml.MappingNode {
				return document.Locale{}, errors.New("rendercv: locale translations must be a mapping")
			}
			locale.Translations = decodePairs(value)
		}
	}
	return locale, nil
}

func decodeSettings(node *yaml.Node) (document.Settings, error) {
	if node.Kind != yaml.MappingNode {
		return document.Settings{}, errors.New("rendercv: settings must be a mapping")
	}
	var settings document.Settings
	for i := 0; i+1 < len(node.Content); i += 2 {
		value := resolved(node.Content[i+1])
		switch node.Content[i].Value {
		case "current_date":
			settings.CurrentDate = scalarString(value)
		case "bold_keywords":
			if value.Kind != yaml.SequenceNode {
				return document.Settings{}, errors.New("rendercv: bold_keywords must be a list")
			}
			for _, item := range value.Content {
				settings.BoldKeywords = append(settings.BoldKeywords, scalarString(resolved(item)))
			}
		case "render_command":
			if value.Kind != yaml.MappingNode {
				return document.Settings{}, errors.New("rendercv: render_command must be a mapping")
			}
			for i := 0; i+1 < len(value.Content); i += 2 {
				decoded, err := nodeValue(resolved(value.Content[i+1]))
				if err != nil {
					return document.Settings{}, err
				}
				settings.RenderCommand = append(settings.RenderCommand, document.Field{
					Key:   value.Content[i].Value,
					Value: decoded,
				})
			}
		}
	}
	return settings, nil
}

// nodeValue converts a value node to the model's loose representation:
// scalars become typed Go values, homogeneous string sequences become
// []string, mixed sequences become []any, and mappings stay raw nodes.
func nodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return scalarValue(node)
	case yaml.SequenceNode:
		allStrings := true
		for _, item := range node.Content {
			item = resolved(item)
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				allStrings = false
				break
			}
		}
		if allStrings {
			items := make([]string, 0, len(node.Content))
			for _, item := range node.Content {
				items = append(items, resolved(item).Value)
			}
			return items, nil
		}
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := nodeValue(resolved(item))
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.MappingNode:
		return node, nil
	case yaml.AliasNode:
		return nodeValue(resolved(node))
	}
	return nil, fmt.Errorf("rendercv: unsupported node kind %d", node.Kind)
}

func scalarValue(node *yaml.Node) (any, error) {
	switch node.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var value bool
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("rendercv: bool scalar: %w", err)
		}
		return value, nil
	case "!!int":
		var value int
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("rendercv: int scalar: %w", err)
		}
		return value, nil
	case "!!float":
		var value float64
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("rendercv: float scalar: %w", err)
		}
		return value, nil
	}
	return node.Value, nil
}

func scalarString(node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

func resolved(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
