package validator

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{ name }} tokens. The match is non-greedy and
// non-overlapping: the inner text runs up to the first "}}" after the
// opening "{{". For nested braces such as "{{a{{b}}}}" this yields the single
// token "a{{b" and leaves the trailing "}}" unmatched.
var placeholderPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// PlaceholderSet is the ordered set of placeholder names found in a template.
// Names keep the order of their first occurrence. The zero value is the
// empty set.
type PlaceholderSet struct {
	names []string
	index map[string]struct{}
}

// ExtractPlaceholders scans text for {{name}} tokens and returns their
// trimmed names, first occurrence first, duplicates collapsed.
//
// Thread-safety: Pure function, safe for concurrent calls.
func ExtractPlaceholders(text string) PlaceholderSet {
	var set PlaceholderSet
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		set.add(strings.TrimSpace(m[1]))
	}
	return set
}

func (s *PlaceholderSet) add(name string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

// Names returns a copy of the placeholder names in first-occurrence order.
func (s PlaceholderSet) Names() []string {
	if len(s.names) == 0 {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Has reports whether name is one of the placeholders.
func (s PlaceholderSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of distinct placeholders.
func (s PlaceholderSet) Len() int {
	return len(s.names)
}

// Join returns the names separated by ", ", the form used in diagnostic data.
func (s PlaceholderSet) Join() string {
	return strings.Join(s.names, ", ")
}

// ReplacePlaceholders substitutes every {{name}} token in text with the value
// returned by lookup. Tokens for which lookup reports false are left as is.
func ReplacePlaceholders(text string, lookup func(name string) (string, bool)) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := strings.TrimSpace(token[2 : len(token)-2])
		if v, ok := lookup(name); ok {
			return v
		}
		return token
	})
}
