package faq

import "slices"

// ExpandedSet lists the ids of items whose answer panel is open, in the order
// they were opened. Methods never mutate the receiver.
type ExpandedSet []int

// Contains reports whether id is expanded.
func (s ExpandedSet) Contains(id int) bool {
	return slices.Contains(s, id)
}

// Toggle removes id when present and appends it otherwise.
func (s ExpandedSet) Toggle(id int) ExpandedSet {
	if s.Contains(id) {
		out := make(ExpandedSet, 0, len(s))
		for _, existing := range s {
			if existing != id {
				out = append(out, existing)
			}
		}
		return out
	}
	out := make(ExpandedSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, id)
}

// AllExpanded reports whether every item of the list is expanded.
func (s ExpandedSet) AllExpanded(items []Item) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !s.Contains(item.ID) {
			return false
		}
	}
	return true
}

// ToggleAll collapses everything when all items are expanded and expands
// every item otherwise. Callers pass the full dataset, not a filtered view.
func (s ExpandedSet) ToggleAll(items []Item) ExpandedSet {
	if s.AllExpanded(items) {
		return ExpandedSet{}
	}
	out := make(ExpandedSet, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
