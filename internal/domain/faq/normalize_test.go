package faq

import (
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ids   []int
	}{
		{name: "empty query returns everything", query: "", ids: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "matches question or answer", query: "Next.js", ids: []int{1, 3, 4, 5, 7, 8}},
		{name: "ignores case", query: "tailwind", ids: []int{2}},
		{name: "matches answer only", query: "SEO", ids: []int{4}},
		{name: "upper case query", query: "TYPESCRIPT", ids: []int{6}},
		{name: "no match", query: "kubernetes", ids: []int{}},
	}

	for _, tc := range tests {
		got := Filter(Items(), tc.query)
		if len(got) != len(tc.ids) {
			t.Fatalf("%s: expected %d items got %d", tc.name, len(tc.ids), len(got))
		}
		for i, item := range got {
			if item.ID != tc.ids[i] {
				t.Fatalf("%s: expected ids %v got item %d at %d", tc.name, tc.ids, item.ID, i)
			}
		}
	}
}

func TestFilterAgreesWithLowercaseMatch(t *testing.T) {
	queries := []string{"what", "WHAT IS", "css", "build", ".js", "[id]", "_app", "react", "pages/api", " ", "ſ", "ß", "ﬁ", "É", "ΣΕΟ"}
	items := Items()
	for _, q := range queries {
		var want []int
		needle := strings.ToLower(q)
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Question), needle) || strings.Contains(strings.ToLower(item.Answer), needle) {
				want = append(want, item.ID)
			}
		}
		got := Filter(items, q)
		if len(got) != len(want) {
			t.Fatalf("query %q: expected %v got %v", q, want, got)
		}
		for i := range got {
			if got[i].ID != want[i] {
				t.Fatalf("query %q: expected %v got %v", q, want, got)
			}
		}
	}
}

func TestFilterNonASCIIUsesLowercaseNotFolding(t *testing.T) {
	for _, q := range []string{"ſ", "ß", "ﬁ"} {
		if got := Filter(Items(), q); len(got) != 0 {
			t.Fatalf("query %q: expected no items got %v", q, got)
		}
	}

	items := []Item{
		{ID: 1, Question: "Was ist der Unterschied?", Answer: "Über die Straße gehen."},
		{ID: 2, Question: "Strasse oder Straße?", Answer: "Beides."},
		{ID: 3, Question: "Café", Answer: "Ein Ort."},
	}
	tests := []struct {
		query string
		ids   []int
	}{
		{query: "über", ids: []int{1}},
		{query: "STRAßE", ids: []int{1, 2}},
		{query: "strasse", ids: []int{2}},
		{query: "CAFÉ", ids: []int{3}},
	}
	for _, tc := range tests {
		got := Filter(items, tc.query)
		if len(got) != len(tc.ids) {
			t.Fatalf("query %q: expected %v got %v", tc.query, tc.ids, got)
		}
		for i := range got {
			if got[i].ID != tc.ids[i] {
				t.Fatalf("query %q: expected %v got %v", tc.query, tc.ids, got)
			}
		}
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	items := Items()
	got := Filter(items, "")
	got[0].Question = "changed"
	if items[0].Question == "changed" {
		t.Fatal("filter result shares backing array with input")
	}
}
