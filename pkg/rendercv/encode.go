package rendercv

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cvgen/pkg/document"
)

// wrapThreshold is the longest single-line value emitted as a plain scalar.
// Anything longer that contains a space becomes a literal block, since the
// emitter would otherwise fold it across lines and the renderer treats a
// folded value as changed content.
const wrapThreshold = 64

// Encode serializes doc to renderer-ready YAML. Output bytes are a pure
// function of the document: key order follows the model, internal fields and
// empty values are stripped, and an empty settings block is omitted.
func Encode(doc Document) ([]byte, error) {
	cv, err := cvNode(doc.CV)
	if err != nil {
		return nil, err
	}
	root := mappingNode()
	appendPair(root, "cv", cv)
	appendPair(root, "design", designNode(doc.Design))
	appendPair(root, "locale", localeNode(doc.Locale))
	if !doc.Settings.Empty() {
		settings, err := settingsNode(doc.Settings)
		if err != nil {
			return nil, err
		}
		appendPair(root, "settings", settings)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("rendercv: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("rendercv: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeSession composes the session into a Document and encodes it.
func EncodeSession(s *document.Session) ([]byte, error) {
	return Encode(FromSession(s))
}

func cvNode(cv *document.CV) (*yaml.Node, error) {
	if cv == nil {
		cv = document.NewCV()
	}
	m := mappingNode()
	appendPair(m, "name", strNode(cv.Name))
	for _, field := range []struct {
		key   string
		value string
	}{
		{"headline", cv.Headline},
		{"location", cv.Location},
		{"email", cv.Email},
		{"phone", cv.Phone},
		{"website", cv.Website},
		{"photo", cv.Photo},
	} {
		if field.value != "" {
			appendPair(m, field.key, strNode(field.value))
		}
	}
	if len(cv.SocialNetworks) > 0 {
		seq := sequenceNode()
		for _, sn := range cv.SocialNetworks {
			item := mappingNode()
			appendPair(item, "network", strNode(sn.Network))
			appendPair(item, "username", strNode(sn.Username))
			seq.Content = append(seq.Content, item)
		}
		appendPair(m, "social_networks", seq)
	}
	if len(cv.CustomConnections) > 0 {
		seq := sequenceNode()
		for _, pairs := range cv.CustomConnections {
			seq.Content = append(seq.Content, pairsNode(pairs))
		}
		appendPair(m, "custom_connections", seq)
	}
	sections := mappingNode()
	for _, section := range cv.Sections {
		seq := sequenceNode()
		for _, entry := range section.Entries {
			node, err := entryNode(entry)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, node)
		}
		appendPair(sections, section.Name, seq)
	}
	appendPair(m, "sections", sections)
	return m, nil
}

// entryNode strips internal fields, empty strings, and empty lists. An entry
// whose every field is stripped still occupies its slot in the section list
// as an empty mapping, so positions stay stable for diagnostics.
func entryNode(entry *document.Entry) (*yaml.Node, error) {
	m := mappingNode()
	for _, field := range entry.Fields() {
		if strings.HasPrefix(field.Key, document.ReservedPrefix) {
			continue
		}
		if emptyValue(field.Value) {
			continue
		}
		node, err := valueNode(field.Value)
		if err != nil {
			return nil, err
		}
		appendPair(m, field.Key, node)
	}
	return m, nil
}

func designNode(d document.Design) *yaml.Node {
	theme := d.Theme
	if theme == "" {
		theme = document.DefaultTheme
	}
	m := mappingNode()
	appendPair(m, "theme", strNode(theme))
	if len(d.Templates) > 0 {
		appendPair(m, "templates", pairsNode(d.Templates))
	}
	if d.Color != "" {
		appendPair(m, "color", strNode(d.Color))
	}
	if d.DisablePageNumbering != nil {
		appendPair(m, "disable_page_numbering", boolNode(*d.DisablePageNumbering))
	}
	return m
}

func localeNode(l document.Locale) *yaml.Node {
	language := l.Language
	if language == "" {
		language = document.DefaultLanguage
	}
	m := mappingNode()
	appendPair(m, "language", strNode(language))
	if l.DateStyle != "" {
		appendPair(m, "date_style", strNode(l.DateStyle))
	}
	if len(l.Translations) > 0 {
		appendPair(m, "translations", pairsNode(l.Translations))
	}
	return m
}

func settingsNode(s document.Settings) (*yaml.Node, error) {
	m := mappingNode()
	if s.CurrentDate != "" {
		appendPair(m, "current_date", strNode(s.CurrentDate))
	}
	if len(s.BoldKeywords) > 0 {
		seq := sequenceNode()
		for _, keyword := range s.BoldKeywords {
			seq.Content = append(seq.Content, strNode(keyword))
		}
		appendPair(m, "bold_keywords", seq)
	}
	if len(s.RenderCommand) > 0 {
		rc := mappingNode()
		for _, field := range s.RenderCommand {
			node, err := valueNode(field.Value)
			if err != nil {
				return nil, err
			}
			appendPair(rc, field.Key, node)
		}
		appendPair(m, "render_command", rc)
	}
	return m, nil
}

func valueNode(v any) (*yaml.Node, error) {
	switch value := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return strNode(value), nil
	case bool:
		return boolNode(value), nil
	case []string:
		seq := sequenceNode()
		for _, item := range value {
			seq.Content = append(seq.Content, strNode(item))
		}
		return seq, nil
	case []any:
		seq := sequenceNode()
		for _, item := range value {
			node, err := valueNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, node)
		}
		return seq, nil
	case document.Pairs:
		return pairsNode(value), nil
	case *yaml.Node:
		return value, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, fmt.Errorf("rendercv: encode %T value: %w", v, err)
		}
		return node, nil
	}
}

func pairsNode(pairs document.Pairs) *yaml.Node {
	m := mappingNode()
	for _, pair := range pairs {
		appendPair(m, pair.Key, strNode(pair.Value))
	}
	return m
}

func strNode(value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if needsLiteral(value) {
		n.Style = yaml.LiteralStyle
	}
	return n
}

func boolNode(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequenceNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, keyNode(key), value)
}

func needsLiteral(value string) bool {
	if strings.Contains(value, "\n") {
		return true
	}
	return len(value) > wrapThreshold && strings.Contains(value, " ")
}

func emptyValue(v any) bool {
	switch value := v.(type) {
	case string:
		return value == ""
	case []string:
		return len(value) == 0
	case []any:
		return len(value) == 0
	}
	return false
}
