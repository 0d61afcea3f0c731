package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"unicode/utf8"
)

// Image is a rendered QR code.
type Image struct {
	Format Format
	Data   []byte
	// Size is the pixel width and height of the image.
	Size int
	// Raster holds the decoded canvas for PNG output; nil for SVG.
	Raster image.Image
}

// ContentType returns the MIME type of the image data.
func (i *Image) ContentType() string {
	return i.Format.ContentType()
}

// Filename returns the download name, e.g. "qrcode.png".
func (i *Image) Filename() string {
	return "qrcode." + i.Format.Ext()
}

// Encode renders content as a QR code according to opts.
// Content is encoded byte for byte; whitespace-only content yields
// ErrEmptyContent and content longer than MaxContentLength characters yields
// ErrContentTooLong. Malformed colors fall back to black on white instead of failing.
func Encode(content string, opts Options) (*Image, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	format := opts.Format
	if format == "" {
		format = PNG
	}
	if format != PNG && format != SVG {
		return nil, ErrUnsupportedFormat
	}

	m, err := newMatrix(content, opts.Level)
	if err != nil {
		return nil, err
	}
	st := opts.resolve()

	if format == SVG {
		return &Image{Format: SVG, Data: []byte(vectorize(m, st)), Size: st.size}, nil
	}

	img := rasterize(m, st)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return &Image{Format: PNG, Data: buf.Bytes(), Size: img.Bounds().Dx(), Raster: img}, nil
}

// Generate creates a QR code image in PNG format with the given content.
// Returns the image as a byte slice or an error if generation fails.
func Generate(content string, size int) ([]byte, error) {
	img, err := Encode(content, Options{Size: size})
	if err != nil {
		return nil, err
	}
	return img.Data, nil
}

// GenerateBase64Image creates a base64 encoded string representation of a QR code
// image with the given content. Returns the base64 encoded string or an error if
// generation fails.
//
// Usage:
//
//	base64Image, err := GenerateBase64Image("https://qrgen.app", 128)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// And then use the base64Image string in an HTML template like this:
//
//	<img src="{{.QrCode}}">
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	base64Image := base64.StdEncoding.EncodeToString(png)
	return fmt.Sprintf("data:image/png;base64,%s", base64Image), nil
}
