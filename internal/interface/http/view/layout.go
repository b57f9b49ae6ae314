// Package view renders the FAQ page: a document shell and the FAQ fragments,
// all defined in embedded html/template files and exposed as templ components.
package view

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
)

const (
	tailwindScript = "https://cdn.tailwindcss.com"
	htmxScript     = "https://unpkg.com/htmx.org@2.0.4"
)

type layoutData struct {
	Title          string
	Description    string
	TailwindScript string
	HTMXScript     string
	Body           template.HTML
}

// Layout is the page shell. It writes the document scaffold and metadata and
// renders the children passed with templ.WithChildren inside <body>.
func Layout(meta faq.Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		var body bytes.Buffer
		if err := children.Render(ctx, &body); err != nil {
			return err
		}
		return templates.ExecuteTemplate(w, "layout", layoutData{
			Title:          meta.Title,
			Description:    meta.Description,
			TailwindScript: tailwindScript,
			HTMXScript:     htmxScript,
			Body:           template.HTML(body.String()),
		})
	})
}

// Document renders the full FAQ page inside the layout.
func Document(page faq.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(page.Metadata).Render(templ.WithChildren(ctx, Page(page)), w)
	})
}
