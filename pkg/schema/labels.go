package schema

import (
	"regexp"
	"strings"
	"unicode"
)

var splitKeyPattern = regexp.MustCompile(`[_\-\s]+`)

// Label converts a field key into a human-friendly label. It splits on
// underscores, dashes, and camelCase boundaries, so "thesis_title" and
// "thesisTitle" both become "Thesis Title". Keys declared by a built-in kind
// carry explicit labels; this covers user-added custom fields.
func Label(key string) string {
	if key == "" {
		return ""
	}
	var words []string
	for _, part := range splitKeyPattern.Split(key, -1) {
		for _, word := range strings.Fields(camelBreak(part)) {
			words = append(words, titleWord(word))
		}
	}
	return strings.Join(words, " ")
}

func camelBreak(input string) string {
	runes := []rune(input)
	var out strings.Builder
	for i, r := range runes {
		if i > 0 && camelBoundary(runes[i-1], r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func camelBoundary(prev, curr rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(curr):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(curr):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(curr):
		return true
	}
	return false
}

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
