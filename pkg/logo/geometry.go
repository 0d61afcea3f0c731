package logo

import (
	"math"

	"github.com/dmitrymomot/qrgen/pkg/sanitizer"
)

const (
	MinPercent     = 10
	MaxPercent     = 50
	DefaultPercent = 20

	// BufferMargin is the quiet gap, in pixels of the final image, between
	// the logo and the surrounding modules.
	BufferMargin = 4.0
)

// ClampPercent bounds a logo size percentage to [MinPercent, MaxPercent].
// Zero selects DefaultPercent.
func ClampPercent(p int) int {
	if p == 0 {
		return DefaultPercent
	}
	return sanitizer.Clamp(p, MinPercent, MaxPercent)
}

// Rect is an axis-aligned box in the code's coordinate space.
type Rect struct {
	X, Y, W, H float64
}

// Layout is the placement of a logo and the buffer drawn beneath it.
type Layout struct {
	Logo   Rect
	Buffer Rect
}

// Compute places a logo of natural size logoW x logoH on a square code of side
// size. The logo is scaled by a single factor so its longer side equals
// size*percent/100, centered, with a buffer of margin units on each side.
// The buffer is clipped to the code bounds.
func Compute(size float64, logoW, logoH, percent int, margin float64) Layout {
	percent = ClampPercent(percent)
	maxLogo := size * float64(percent) / 100

	longest := float64(max(logoW, logoH, 1))
	scale := maxLogo / longest
	w := float64(max(logoW, 1)) * scale
	h := float64(max(logoH, 1)) * scale

	l := Rect{X: (size - w) / 2, Y: (size - h) / 2, W: w, H: h}

	bx := math.Max(0, l.X-margin)
	by := math.Max(0, l.Y-margin)
	b := Rect{
		X: bx,
		Y: by,
		W: math.Min(size, l.X+l.W+margin) - bx,
		H: math.Min(size, l.Y+l.H+margin) - by,
	}

	return Layout{Logo: l, Buffer: b}
}

// Offset shifts both boxes by (dx, dy).
func (l Layout) Offset(dx, dy float64) Layout {
	l.Logo.X += dx
	l.Logo.Y += dy
	l.Buffer.X += dx
	l.Buffer.Y += dy
	return l
}
