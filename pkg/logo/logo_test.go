package logo_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/logo"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("png", func(t *testing.T) {
		t.Parallel()
		l, err := logo.Decode(pngBytes(t, solid(40, 20, red)), 99)
		require.NoError(t, err)
		assert.Equal(t, "image/png", l.MIME)
		assert.Equal(t, logo.MaxPercent, l.Percent)
		w, h := l.Size()
		assert.Equal(t, 40, w)
		assert.Equal(t, 20, h)
		assert.True(t, strings.HasPrefix(l.DataURI(), "data:image/png;base64,"))
	})

	t.Run("jpeg", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, solid(16, 16, red), nil))
		l, err := logo.Decode(buf.Bytes(), 0)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", l.MIME)
		assert.Equal(t, logo.DefaultPercent, l.Percent)
	})

	t.Run("gif is rejected", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, gif.Encode(&buf, solid(8, 8, red), nil))
		_, err := logo.Decode(buf.Bytes(), 20)
		require.ErrorIs(t, err, logo.ErrUnsupportedType)
	})

	t.Run("corrupt png", func(t *testing.T) {
		t.Parallel()
		data := pngBytes(t, solid(8, 8, red))
		_, err := logo.Decode(data[:len(data)/2], 20)
		require.ErrorIs(t, err, logo.ErrDecodeLogo)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := logo.Decode(nil, 20)
		require.ErrorIs(t, err, logo.ErrEmptyLogo)
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()

	l, err := logo.Decode(pngBytes(t, solid(40, 20, red)), 20)
	require.NoError(t, err)

	base := solid(200, 200, color.Black)
	out, err := logo.Composite(base, l, color.White)
	require.NoError(t, err)
	require.Equal(t, base.Bounds(), out.Bounds())

	// logo occupies (80,90)-(120,110); buffer extends 4px further on each side
	center := out.NRGBAAt(100, 100)
	assert.Greater(t, center.R, uint8(200))
	assert.Less(t, center.G, uint8(50))

	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, out.NRGBAAt(78, 100), "buffer left of logo")
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, out.NRGBAAt(100, 87), "buffer above logo")
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, out.NRGBAAt(70, 100), "untouched module area")
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, out.NRGBAAt(100, 80), "untouched module area")

	// the base image is not modified
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, base.NRGBAAt(100, 100))
}

func TestCompositePNG(t *testing.T) {
	t.Parallel()

	l, err := logo.Decode(pngBytes(t, solid(10, 30, red)), 50)
	require.NoError(t, err)

	data, err := logo.CompositePNG(solid(128, 128, color.White), l, color.White)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestComposite_Failures(t *testing.T) {
	t.Parallel()

	l, err := logo.Decode(pngBytes(t, solid(4, 4, red)), 20)
	require.NoError(t, err)

	_, err = logo.Composite(nil, l, color.White)
	require.ErrorIs(t, err, logo.ErrSurface)

	_, err = logo.Composite(image.NewNRGBA(image.Rect(0, 0, 0, 0)), l, color.White)
	require.ErrorIs(t, err, logo.ErrSurface)

	_, err = logo.Composite(solid(64, 64, color.White), nil, color.White)
	require.ErrorIs(t, err, logo.ErrEmptyLogo)

	_, err = logo.DecodeBase([]byte("not an image"))
	require.ErrorIs(t, err, logo.ErrSurface)
}
