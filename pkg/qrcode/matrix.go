package qrcode

import (
	"errors"
	"image"

	skipqrcode "github.com/skip2/go-qrcode"
)

const finderSize = 7

// matrix is the module grid of an encoded symbol without its quiet zone.
type matrix struct {
	modules [][]bool
	n       int
}

func newMatrix(content string, level Level) (*matrix, error) {
	q, err := skipqrcode.New(content, level.recovery())
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	q.DisableBorder = true
	bm := q.Bitmap()
	if len(bm) == 0 {
		return nil, ErrorFailedToGenerateQRCode
	}
	return &matrix{modules: bm, n: len(bm)}, nil
}

func (m *matrix) dark(x, y int) bool {
	return m.modules[y][x]
}

// inFinder reports whether (x, y) belongs to one of the three finder patterns.
func (m *matrix) inFinder(x, y int) bool {
	for _, o := range m.finders() {
		if x >= o.X && x < o.X+finderSize && y >= o.Y && y < o.Y+finderSize {
			return true
		}
	}
	return false
}

// finders returns the top-left module of each finder pattern.
func (m *matrix) finders() [3]image.Point {
	far := m.n - finderSize
	return [3]image.Point{{0, 0}, {far, 0}, {0, far}}
}

// cornerRadius returns the rounding, in modules, for a finder layer of the given side length.
func cornerRadius(c CornerStyle, side float64) float64 {
	switch c {
	case CornerRounded:
		return side * 0.25
	case CornerDots:
		return side / 2
	default:
		return 0
	}
}
