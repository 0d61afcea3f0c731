package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen/pkg/preview"
)

// ImageURL is the path that serves a preview handle.
func ImageURL(h preview.Handle) string {
	return "/preview/image/" + string(h)
}

// Preview renders the #preview element for st.
func Preview(st preview.State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		b := &writer{w: w}
		b.open("div", "id", "preview", "aria-live", "polite", "aria-busy", fmt.Sprint(st.Pending))

		switch {
		case st.Error != "":
			b.elem("p", st.Error, "class", "error", "role", "alert")
		case st.Handle != "":
			b.open("img",
				"src", ImageURL(st.Handle),
				"alt", "QR code preview",
				"width", itoa(st.PreviewSize),
				"height", itoa(st.PreviewSize),
			)
			if st.Scaled {
				b.elem("p", fmt.Sprintf("Preview shown at %d px. Download will be %d px.", st.PreviewSize, st.RequestedSize), "class", "notice")
			}
		case st.Empty:
			b.elem("p", "Enter content to generate a QR code.", "class", "placeholder")
		}

		if st.LogoError != "" {
			b.elem("p", st.LogoError, "class", "warning", "role", "status")
		}
		if st.Pending {
			b.elem("span", "Generating…", "class", "spinner")
		}
		if st.Chars > 0 {
			b.elem("small", fmt.Sprintf("%d characters", st.Chars))
		}
		b.close("div")
		return b.err
	})
}

// Warnings renders the #warnings element with field format warnings.
func Warnings(st preview.State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		b := &writer{w: w}
		b.open("ul", "id", "warnings")
		for _, f := range st.Warnings.Fields() {
			for _, msg := range st.Warnings.Get(f) {
				b.elem("li", f+" "+msg, "data-field", f)
			}
		}
		b.close("ul")
		return b.err
	})
}

// LogoStatus renders the #logo-status element.
func LogoStatus(hasLogo bool, percent int, msg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		b := &writer{w: w}
		b.open("div", "id", "logo-status")
		switch {
		case msg != "":
			b.elem("p", msg, "class", "error", "role", "alert")
		case hasLogo:
			b.elem("p", fmt.Sprintf("Logo applied at %d%% of the code size.", percent))
		}
		b.close("div")
		return b.err
	})
}
