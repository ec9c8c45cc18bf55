package favorites

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// List is a set of favorite channel slugs with usage tracking. A nil
// List filters nothing.
type List struct {
	slugs map[string]bool
	used  map[string]bool
}

// Load reads a slug list from path. An empty path returns a nil list,
// which admits every channel.
func Load(path string) (*List, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open favorites list: %w", err)
	}
	defer f.Close()

	l := &List{
		slugs: make(map[string]bool),
		used:  make(map[string]bool),
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.slugs[line] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read favorites list: %w", err)
	}
	return l, nil
}

// Contains reports whether slug is on the list and records the match.
// A nil list admits everything.
func (l *List) Contains(slug string) bool {
	if l == nil {
		return true
	}
	if l.slugs[slug] {
		l.used[slug] = true
		return true
	}
	return false
}

// Len reports how many slugs the list holds.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.slugs)
}

// Unused returns the slugs that never matched a channel, sorted.
func (l *List) Unused() []string {
	if l == nil {
		return nil
	}
	var out []string
	for slug := range l.slugs {
		if !l.used[slug] {
			out = append(out, slug)
		}
	}
	sort.Strings(out)
	return out
}
