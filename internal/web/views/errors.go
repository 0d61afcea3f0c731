package views

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen/handler"
)

// ErrorPage is the full page shown for failed page requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	title := http.StatusText(p.StatusCode)
	if title == "" {
		title = "Error"
	}
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		b := &writer{w: w}
		b.open("section", "class", "error-page")
		b.elem("h1", title)
		if p.StatusCode == http.StatusNotFound {
			b.elem("p", "The page you are looking for does not exist.")
		} else {
			b.elem("p", p.Error)
		}
		if p.RequestID != "" {
			b.elem("small", "Request ID: "+p.RequestID)
		}
		b.elem("a", "Back to the generator", "href", "/")
		b.close("section")
		return b.err
	})
	return Layout(Meta{Title: title}, body)
}

// Toast is the dismissible message patched into #toast-container.
func Toast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		b := &writer{w: w}
		b.open("div", "class", "toast toast-"+p.Type, "role", "alert", "data-on:click", "el.remove()")
		b.text(p.Message)
		b.close("div")
		return b.err
	})
}
