package document

import "strings"

// SplitList turns raw multiline text into list items: one item per line,
// whitespace trimmed, blank lines dropped.
func SplitList(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// JoinList renders a list value back into the multiline text shape editors
// show, one item per line.
func JoinList(items []string) string {
	return strings.Join(items, "\n")
}
