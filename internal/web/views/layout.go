package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// Meta is the document head.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Nav         []NavLink
}

// NavLink is a header navigation entry.
type NavLink struct {
	Label string
	Href  string
}

// Layout wraps body in the page shell.
func Layout(m Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &writer{w: w}
		b.raw("<!DOCTYPE html>")
		b.open("html", "lang", "en")
		b.open("head")
		b.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.elem("title", m.Title)
		if m.Description != "" {
			b.open("meta", "name", "description", "content", m.Description)
		}
		if m.Canonical != "" {
			b.open("link", "rel", "canonical", "href", m.Canonical)
		}
		b.open("script", "type", "module", "src", datastarScript)
		b.close("script")
		b.close("head")

		b.open("body")
		b.open("header")
		b.open("nav")
		b.elem("a", "QR Code Generator", "href", "/")
		for _, l := range m.Nav {
			b.elem("a", l.Label, "href", l.Href)
		}
		b.close("nav")
		b.close("header")
		b.open("div", "id", "toast-container")
		b.close("div")
		b.open("main")
		if b.err != nil {
			return b.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		b.close("main")
		b.open("footer")
		b.elem("p", "100% free. No account needed. Nothing you enter is stored.")
		b.close("footer")
		b.close("body")
		b.close("html")
		return b.err
	})
}
