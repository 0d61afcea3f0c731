package qrcode

import (
	"fmt"
	"strings"
)

// vectorize renders m as SVG markup.
// The view box is expressed in modules; width and height carry the pixel size.
func vectorize(m *matrix, st style) string {
	total := m.n + 2*st.margin
	fg, bg := HexColor(st.fg), HexColor(st.bg)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d"`,
		total, total, st.size, st.size)
	if st.dots == DotSquare && st.corners == CornerSquare {
		b.WriteString(` shape-rendering="crispEdges"`)
	}
	b.WriteString(">")
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, total, total, bg)

	switch st.dots {
	case DotSquare:
		fmt.Fprintf(&b, `<path fill="%s" d="`, fg)
		m.eachData(func(x, y int) {
			fmt.Fprintf(&b, "M%d %dh1v1h-1z", x+st.margin, y+st.margin)
		})
		b.WriteString(`"/>`)
	default:
		fmt.Fprintf(&b, `<g fill="%s">`, fg)
		m.eachData(func(x, y int) {
			mx, my := x+st.margin, y+st.margin
			if st.dots == DotDots {
				fmt.Fprintf(&b, `<circle cx="%d.5" cy="%d.5" r="0.45"/>`, mx, my)
				return
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" rx="0.33"/>`, mx, my)
		})
		b.WriteString("</g>")
	}

	for _, f := range m.finders() {
		for i, c := range []string{fg, bg, fg} {
			side := float64(finderSize - 2*i)
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%g" height="%g" rx="%g" fill="%s"/>`,
				f.X+st.margin+i, f.Y+st.margin+i, side, side, cornerRadius(st.corners, side), c)
		}
	}

	b.WriteString("</svg>")
	return b.String()
}

// eachData calls fn for every dark module outside the finder patterns.
func (m *matrix) eachData(fn func(x, y int)) {
	for y := range m.n {
		for x := range m.n {
			if m.dark(x, y) && !m.inFinder(x, y) {
				fn(x, y)
			}
		}
	}
}
