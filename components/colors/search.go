package colors

import (
	"sort"
	"strings"
)

// Search filters the catalog by a case-insensitive substring match, prefix
// matches first. An empty query returns the top of the catalog or nothing,
// per opts.EmptySearchMode.
func Search(catalog []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(catalog) <= limit {
				return append([]string{}, catalog...)
			}
			return append([]string{}, catalog[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedColor, 0, 32)
	for _, name := range catalog {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, matchedColor{
			name:     name,
			isPrefix: strings.HasPrefix(lower, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// SearchOptions is Search with results mapped to value/label options.
func SearchOptions(catalog []string, query string, limit int, opts Options) []Option {
	results := Search(catalog, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, name := range results {
		out = append(out, Option{Value: name, Label: name})
	}
	return out
}

type matchedColor struct {
	name     string
	isPrefix bool
}
