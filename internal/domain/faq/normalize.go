package faq

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matcher performs lowercase substring checks against a lowered needle.
// Both sides are lowercased, not case folded: "ß" never matches "ss".
// A cases.Caser is stateful, so a matcher must not be shared between goroutines.
type matcher struct {
	lower  cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{lower: lower, needle: lower.String(query)}
}

func (m *matcher) matches(text string) bool {
	return strings.Contains(m.lower.String(text), m.needle)
}

// Filter returns the items whose question or answer contains query, ignoring
// case. An empty query returns the whole list.
func Filter(items []Item, query string) []Item {
	out := make([]Item, 0, len(items))
	if query == "" {
		return append(out, items...)
	}
	m := newMatcher(query)
	for _, item := range items {
		if m.matches(item.Question) || m.matches(item.Answer) {
			out = append(out, item)
		}
	}
	return out
}
