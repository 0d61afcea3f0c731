package logo

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

const xlinkNS = `xmlns:xlink="http://www.w3.org/1999/xlink"`

var (
	svgOpenTag   = regexp.MustCompile(`(?s)<svg\b[^>]*>`)
	viewBoxAttr  = regexp.MustCompile(`\bviewBox\s*=\s*["']([^"']+)["']`)
	widthAttr    = regexp.MustCompile(`\bwidth\s*=\s*["']([0-9.]+)(px)?["']`)
	heightAttr   = regexp.MustCompile(`\bheight\s*=\s*["']([0-9.]+)(px)?["']`)
	viewBoxSplit = regexp.MustCompile(`[\s,]+`)
)

// viewBox is the coordinate space declared by an SVG root element.
type viewBox struct {
	minX, minY, w, h float64
}

// CompositeSVG injects a buffer rectangle and the logo as an embedded image
// right before the closing </svg> tag. Geometry is expressed in the document's
// view box units. pixelSize is the rendered size the margin is measured
// against; zero uses the root element's width attribute.
func CompositeSVG(svg []byte, l *Logo, bg color.Color, pixelSize int) ([]byte, error) {
	if l == nil || l.Image == nil {
		return nil, ErrEmptyLogo
	}
	doc := string(svg)

	open := svgOpenTag.FindStringIndex(doc)
	if open == nil {
		return nil, fmt.Errorf("%w: missing <svg> element", ErrInvalidSVG)
	}
	closeAt := strings.LastIndex(doc, "</svg>")
	if closeAt < open[1] {
		return nil, fmt.Errorf("%w: missing </svg> closing tag", ErrInvalidSVG)
	}

	root := doc[open[0]:open[1]]
	vb, err := parseViewBox(root)
	if err != nil {
		return nil, err
	}

	side := math.Min(vb.w, vb.h)
	px := float64(pixelSize)
	if px <= 0 {
		px = attrFloat(widthAttr, root, side)
	}
	margin := BufferMargin * side / px

	lw, lh := l.Size()
	layout := Compute(side, lw, lh, l.Percent, margin).
		Offset(vb.minX+(vb.w-side)/2, vb.minY+(vb.h-side)/2)

	if bg == nil {
		bg = color.White
	}
	uri := l.DataURI()

	var inject strings.Builder
	fmt.Fprintf(&inject, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		num(layout.Buffer.X), num(layout.Buffer.Y), num(layout.Buffer.W), num(layout.Buffer.H), qrcode.HexColor(bg))
	fmt.Fprintf(&inject, `<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" href="%s" xlink:href="%s"/>`,
		num(layout.Logo.X), num(layout.Logo.Y), num(layout.Logo.W), num(layout.Logo.H), uri, uri)

	if !strings.Contains(root, "xmlns:xlink") {
		root = strings.TrimRight(strings.TrimSuffix(root, ">"), " \t\r\n") + " " + xlinkNS + ">"
	}

	var out strings.Builder
	out.Grow(len(doc) + inject.Len() + len(xlinkNS) + 1)
	out.WriteString(doc[:open[0]])
	out.WriteString(root)
	out.WriteString(doc[open[1]:closeAt])
	out.WriteString(inject.String())
	out.WriteString(doc[closeAt:])
	return []byte(out.String()), nil
}

func parseViewBox(root string) (viewBox, error) {
	if m := viewBoxAttr.FindStringSubmatch(root); m != nil {
		parts := viewBoxSplit.Split(strings.TrimSpace(m[1]), -1)
		if len(parts) != 4 {
			return viewBox{}, fmt.Errorf("%w: malformed viewBox %q", ErrInvalidSVG, m[1])
		}
		var v [4]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return viewBox{}, fmt.Errorf("%w: malformed viewBox %q", ErrInvalidSVG, m[1])
			}
			v[i] = f
		}
		if v[2] <= 0 || v[3] <= 0 {
			return viewBox{}, fmt.Errorf("%w: empty viewBox", ErrInvalidSVG)
		}
		return viewBox{minX: v[0], minY: v[1], w: v[2], h: v[3]}, nil
	}

	w := attrFloat(widthAttr, root, 0)
	h := attrFloat(heightAttr, root, 0)
	if w <= 0 || h <= 0 {
		return viewBox{}, fmt.Errorf("%w: no viewBox or dimensions", ErrInvalidSVG)
	}
	return viewBox{w: w, h: h}, nil
}

func attrFloat(re *regexp.Regexp, tag string, fallback float64) float64 {
	m := re.FindStringSubmatch(tag)
	if m == nil {
		return fallback
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}
