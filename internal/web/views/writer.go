package views

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so markup can be emitted without
// checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (b *writer) raw(s string) {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, s)
	}
}

func (b *writer) text(s string) {
	b.raw(templ.EscapeString(s))
}

func (b *writer) attr(name, value string) {
	b.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (b *writer) open(tag string, attrs ...string) {
	b.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		b.attr(attrs[i], attrs[i+1])
	}
	b.raw(">")
}

func (b *writer) close(tag string) {
	b.raw("</" + tag + ">")
}

func (b *writer) elem(tag, content string, attrs ...string) {
	b.open(tag, attrs...)
	b.text(content)
	b.close(tag)
}

func itoa(n int) string { return strconv.Itoa(n) }
