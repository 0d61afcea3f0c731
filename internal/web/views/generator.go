package views

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/payload"
	"github.com/dmitrymomot/qrgen/pkg/preview"
	"github.com/dmitrymomot/qrgen/pkg/render"
)

// Sizes offered in the size picker.
var Sizes = []int{256, 384, 512, 1024, 2048}

// Generator is the data behind the generator form.
type Generator struct {
	Title       string
	Subtitle    string
	ContentType payload.ContentType
	Style       render.Style
	State       preview.State
}

// signals is the datastar signal tree; field names match preview signals.
type signals struct {
	ContentType payload.ContentType `json:"contentType"`
	Fields      payload.Fields      `json:"fields"`
	Style       render.Style        `json:"style"`
}

type field struct {
	label, signal, kind string
}

var typeFields = map[payload.ContentType][]field{
	payload.URL:      {{"Website URL", "fields.text", "url"}},
	payload.Text:     {{"Text", "fields.text", "textarea"}},
	payload.WiFi:     {{"Network name (SSID)", "fields.ssid", "text"}, {"Password", "fields.password", "text"}, {"Security", "fields.auth", "auth"}},
	payload.VCard:    {{"First name", "fields.firstName", "text"}, {"Last name", "fields.lastName", "text"}, {"Phone", "fields.phone", "tel"}, {"Email", "fields.email", "email"}, {"Company", "fields.company", "text"}, {"Website", "fields.website", "url"}},
	payload.WhatsApp: {{"Phone number", "fields.phone", "tel"}, {"Message", "fields.message", "textarea"}},
	payload.SMS:      {{"Phone number", "fields.phone", "tel"}, {"Message", "fields.message", "textarea"}},
}

const onChange = "@post('/preview')"

// GeneratorForm renders the generator with its initial signals.
func GeneratorForm(g Generator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		initial, err := json.Marshal(signals{
			ContentType: g.ContentType,
			Fields:      payload.Fields{Auth: payload.AuthWPA},
			Style:       g.Style,
		})
		if err != nil {
			return err
		}

		b := &writer{w: w}
		b.open("section", "id", "generator", "data-signals", string(initial), "data-init", "@get('/preview/stream')")
		b.elem("h1", g.Title)
		if g.Subtitle != "" {
			b.elem("p", g.Subtitle)
		}

		b.open("div", "role", "tablist")
		for _, ct := range payload.ContentTypes {
			b.elem("button", ct.Label(),
				"type", "button",
				"data-class:active", "$contentType == '"+string(ct)+"'",
				"data-on:click", "$contentType = '"+string(ct)+"'; "+onChange,
			)
		}
		b.close("div")

		b.open("form", "data-on:input", onChange, "data-on:submit__prevent", "")
		for _, ct := range payload.ContentTypes {
			b.open("fieldset", "data-show", "$contentType == '"+string(ct)+"'")
			for _, f := range typeFields[ct] {
				writeField(b, f)
			}
			b.close("fieldset")
		}
		writeStyle(b)
		b.close("form")

		writeLogoForm(b)

		if b.err != nil {
			return b.err
		}
		if err := Warnings(g.State).Render(ctx, w); err != nil {
			return err
		}
		if err := Preview(g.State).Render(ctx, w); err != nil {
			return err
		}

		b.open("div", "id", "downloads")
		b.elem("a", "Download PNG", "href", "/download?format=png", "download", "qrcode.png")
		b.elem("a", "Download SVG", "href", "/download?format=svg", "download", "qrcode.svg")
		b.close("div")
		b.close("section")
		return b.err
	})
}

func writeField(b *writer, f field) {
	b.open("label")
	b.text(f.label)
	switch f.kind {
	case "textarea":
		b.open("textarea", "data-bind", f.signal, "rows", "3")
		b.close("textarea")
	case "auth":
		b.open("select", "data-bind", f.signal)
		for _, a := range []struct{ v, l string }{{"WPA", "WPA/WPA2"}, {"WEP", "WEP"}, {"nopass", "None"}} {
			b.elem("option", a.l, "value", a.v)
		}
		b.close("select")
	default:
		b.open("input", "type", f.kind, "data-bind", f.signal)
	}
	b.close("label")
}

func writeStyle(b *writer) {
	b.open("fieldset", "id", "style")
	b.elem("legend", "Style")

	b.open("label")
	b.text("Size")
	b.open("select", "data-bind", "style.size")
	for _, px := range Sizes {
		b.elem("option", itoa(px)+" px", "value", itoa(px))
	}
	b.close("select")
	b.close("label")

	b.open("label")
	b.text("Foreground")
	b.open("input", "type", "color", "data-bind", "style.fg")
	b.close("label")
	b.open("label")
	b.text("Background")
	b.open("input", "type", "color", "data-bind", "style.bg")
	b.close("label")

	b.open("label")
	b.text("Dots")
	b.open("select", "data-bind", "style.dots")
	for _, d := range []string{"square", "rounded", "dots"} {
		b.elem("option", d, "value", d)
	}
	b.close("select")
	b.close("label")

	b.open("label")
	b.text("Corners")
	b.open("select", "data-bind", "style.corners", "data-attr:disabled", "$style.matchCorners")
	for _, c := range []string{"square", "rounded", "dots"} {
		b.elem("option", c, "value", c)
	}
	b.close("select")
	b.close("label")

	b.open("label")
	b.open("input", "type", "checkbox", "data-bind", "style.matchCorners")
	b.text("Match corner style")
	b.close("label")

	b.open("label")
	b.text("Format")
	b.open("select", "data-bind", "style.format")
	b.elem("option", "PNG", "value", "png")
	b.elem("option", "SVG", "value", "svg")
	b.close("select")
	b.close("label")
	b.close("fieldset")
}

func writeLogoForm(b *writer) {
	post := "@post('/preview/logo', {contentType: 'form'})"
	b.open("form", "id", "logo-form", "enctype", "multipart/form-data", "data-on:change", post, "data-on:submit__prevent", "")
	b.open("label")
	b.text("Logo (PNG or JPEG)")
	b.open("input", "type", "file", "name", "logo", "accept", "image/png,image/jpeg")
	b.close("label")
	b.open("label")
	b.text("Logo size (%)")
	b.open("input", "type", "range", "name", "logo_percent",
		"min", itoa(logo.MinPercent), "max", itoa(logo.MaxPercent), "value", itoa(logo.DefaultPercent))
	b.close("label")
	b.elem("button", "Remove logo", "type", "button", "data-on:click", "@delete('/preview/logo')")
	b.close("form")
	b.open("div", "id", "logo-status")
	b.close("div")
}
