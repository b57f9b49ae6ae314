package view

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
)

type errorPage struct {
	Status     int
	StatusText string
	Message    string
	Home       string
}

// ErrorDocument renders a failed page request inside the layout.
func ErrorDocument(status int, message, home string) templ.Component {
	data := errorPage{Status: status, StatusText: http.StatusText(status), Message: message, Home: home}
	body := templ.FromGoHTML(templates.Lookup("error-page"), data)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(faq.Metadata{Title: data.StatusText}).Render(templ.WithChildren(ctx, body), w)
	})
}
