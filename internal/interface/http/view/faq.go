package view

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Page is the FAQ view: heading, search form and the panel.
func Page(page faq.Page) templ.Component {
	return templ.FromGoHTML(templates.Lookup("faq-page"), page)
}

// Panel is the swappable region holding the toggle-all control and the list.
// HTMX requests receive only this fragment.
func Panel(page faq.Page) templ.Component {
	return templ.FromGoHTML(templates.Lookup("faq-panel"), page)
}

// List renders one row per item, or a "No results found" notice.
func List(page faq.Page) templ.Component {
	return templ.FromGoHTML(templates.Lookup("faq-list"), page)
}
