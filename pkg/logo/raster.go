package logo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Composite draws base, then the buffer, then the logo onto a new canvas of
// the same size as base.
func Composite(base image.Image, l *Logo, bg color.Color) (*image.NRGBA, error) {
	if base == nil || base.Bounds().Empty() {
		return nil, ErrSurface
	}
	if l == nil || l.Image == nil {
		return nil, ErrEmptyLogo
	}
	if bg == nil {
		bg = color.White
	}

	bounds := base.Bounds()
	size := min(bounds.Dx(), bounds.Dy())
	lw, lh := l.Size()
	layout := Compute(float64(size), lw, lh, l.Percent, BufferMargin)

	canvas := imaging.Clone(base)

	buf := layout.Buffer
	bx, by := int(math.Floor(buf.X)), int(math.Floor(buf.Y))
	bw := int(math.Ceil(buf.X+buf.W)) - bx
	bh := int(math.Ceil(buf.Y+buf.H)) - by
	canvas = imaging.Paste(canvas, imaging.New(bw, bh, bg), image.Pt(bx, by))

	// floor keeps the drawn logo within the maximum box
	dw := max(int(math.Floor(layout.Logo.W)), 1)
	dh := max(int(math.Floor(layout.Logo.H)), 1)
	dx := int(math.Round(layout.Logo.X + (layout.Logo.W-float64(dw))/2))
	dy := int(math.Round(layout.Logo.Y + (layout.Logo.H-float64(dh))/2))
	resized := imaging.Resize(l.Image, dw, dh, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, resized, image.Pt(dx, dy), 1.0)

	return canvas, nil
}

// CompositePNG composites l onto base and encodes the result as PNG.
func CompositePNG(base image.Image, l *Logo, bg color.Color) ([]byte, error) {
	img, err := Composite(base, l, bg)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var out bytes.Buffer
	if err := imaging.Encode(&out, img, imaging.PNG); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return out.Bytes(), nil
}

// DecodeBase decodes a base QR raster from encoded bytes.
func DecodeBase(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrSurface, err)
	}
	return img, nil
}
