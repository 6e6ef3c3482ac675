package colors

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed data/css_colors.txt
var dataFS embed.FS

const defaultListPath = "data/css_colors.txt"

var (
	defaultOnce   sync.Once
	defaultColors []string
	defaultErr    error
)

// DefaultColors returns the embedded CSS named-color list, sorted. The
// returned slice is a copy.
func DefaultColors() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		names, err := LoadColors(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultColors = names
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultColors...), nil
}

// LoadColors reads one color name per line, skipping blanks and # comments,
// deduplicating, and sorting.
func LoadColors(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("colors: missing reader")
	}

	scanner := bufio.NewScanner(r)
	names := make([]string, 0, 160)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ToLower(line)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		names = append(names, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// Normalize maps a user-supplied color to its canonical catalog form. Hex
// values (#rgb, #rrggbb, #rrggbbaa) pass through lowercased, since the
// renderer accepts those alongside named colors.
func Normalize(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	if isHexColor(name) {
		return name, true
	}
	catalog, err := DefaultColors()
	if err != nil {
		return "", false
	}
	i := sort.SearchStrings(catalog, name)
	if i < len(catalog) && catalog[i] == name {
		return name, true
	}
	return "", false
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
