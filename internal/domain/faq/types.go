package faq

// Item is one question/answer record of the FAQ.
type Item struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ItemView pairs an item with its expand/collapse state for rendering.
type ItemView struct {
	Item
	Expanded bool
}

// Metadata is the document-level information exposed to the page shell.
type Metadata struct {
	Title       string
	Description string
}

// Page is the render model of the FAQ page for one request.
type Page struct {
	Metadata
	// Path is the route the page is served from, e.g. "/faq".
	Path string
	// Query is the active search parameter; it also pre-fills the search box.
	Query       string
	Items       []ItemView
	AllExpanded bool
}

// Empty reports whether the filtered list has no rows.
func (p Page) Empty() bool {
	return len(p.Items) == 0
}

// Navigation is the outcome of a search submission.
type Navigation struct {
	Navigate bool
	Location string
}
