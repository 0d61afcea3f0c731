package qrcode

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// rasterize paints m onto a size x size canvas.
// Modules are scaled by an integer factor and centered, as skip2/go-qrcode does.
func rasterize(m *matrix, st style) *image.RGBA {
	total := m.n + 2*st.margin
	size := st.size
	if size < total {
		size = total
	}
	ppm := size / total
	offset := (size - total*ppm) / 2
	origin := offset + st.margin*ppm

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{st.bg}, image.Point{}, draw.Src)

	unit := float64(ppm)
	m.eachData(func(x, y int) {
		px := float64(origin + x*ppm)
		py := float64(origin + y*ppm)
		switch st.dots {
		case DotDots:
			inset := unit * 0.05
			d := unit - 2*inset
			fillRounded(img, px+inset, py+inset, d, d, d/2, st.fg)
		case DotRounded:
			fillRounded(img, px, py, unit, unit, unit/3, st.fg)
		default:
			r := image.Rect(origin+x*ppm, origin+y*ppm, origin+(x+1)*ppm, origin+(y+1)*ppm)
			draw.Draw(img, r, &image.Uniform{st.fg}, image.Point{}, draw.Src)
		}
	})

	for _, f := range m.finders() {
		px := float64(origin + f.X*ppm)
		py := float64(origin + f.Y*ppm)
		for i, c := range []color.RGBA{st.fg, st.bg, st.fg} {
			side := float64(finderSize - 2*i)
			inset := float64(i) * unit
			fillRounded(img, px+inset, py+inset, side*unit, side*unit, cornerRadius(st.corners, side)*unit, c)
		}
	}

	return img
}

// fillRounded fills the rectangle (x, y, w, h) with corners of radius r.
// A pixel is painted when its center lies inside the shape.
func fillRounded(img *image.RGBA, x, y, w, h, r float64, c color.RGBA) {
	r = math.Min(r, math.Min(w, h)/2)
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for py := y0; py < y1; py++ {
		cy := float64(py) + 0.5
		for px := x0; px < x1; px++ {
			cx := float64(px) + 0.5
			if insideRounded(cx, cy, x, y, w, h, r) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func insideRounded(cx, cy, x, y, w, h, r float64) bool {
	if cx < x || cx > x+w || cy < y || cy > y+h {
		return false
	}
	if r <= 0 {
		return true
	}
	// distance to the nearest corner circle center, clamped to the inner rect
	nx := math.Max(x+r, math.Min(cx, x+w-r))
	ny := math.Max(y+r, math.Min(cy, y+h-r))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
