// Package forms holds the draft-manipulation primitives shared by the admin
// form handlers: dot-path field updates on nested drafts, set-like list
// editing, skill level clamping, and slug generation.
package forms

import (
	"strconv"
	"strings"
)

// SetField sets a value in a draft, interpreting "parent.child" names as a
// path into a nested object. Intermediate objects are created as needed; a
// non-object intermediate value is replaced.
func SetField(draft map[string]any, name string, value any) {
	parts := strings.Split(name, ".")
	cur := draft
	for _, key := range parts[:len(parts)-1] {
		next, ok := cur[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[key] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}

// AppendUnique appends item to list unless it is empty after trimming or
// already present. The input slice is never mutated.
func AppendUnique(list []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return list
	}
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// RemoveAt returns a copy of list without the element at index i. An index
// outside the list returns the list unchanged.
func RemoveAt(list []string, i int) []string {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// ClampLevel clamps a skill level into [0,100].
func ClampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ParseLevel parses a range-control value and clamps it. Unparseable input
// maps to 0.
func ParseLevel(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return ClampLevel(n)
}

// ParseList splits a textarea value into a deduplicated list, one item per
// line (commas also accepted), preserving first-seen order.
func ParseList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})
	var out []string
	for _, f := range fields {
		out = AppendUnique(out, f)
	}
	return out
}

// Slugify derives a URL slug from a title: lowercase, alphanumerics kept,
// everything else collapsed to single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
