package logo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"net/http"

	"github.com/disintegration/imaging"
)

// Logo is a decoded user logo together with its requested size.
type Logo struct {
	Data    []byte
	MIME    string
	Image   image.Image
	Percent int
}

// Decode validates and decodes logo bytes. Only PNG and JPEG are accepted.
func Decode(data []byte, percent int) (*Logo, error) {
	if len(data) == 0 {
		return nil, ErrEmptyLogo
	}
	mime := http.DetectContentType(data)
	if mime != "image/png" && mime != "image/jpeg" {
		return nil, ErrUnsupportedType
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Join(ErrDecodeLogo, err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyLogo
	}
	return &Logo{
		Data:    data,
		MIME:    mime,
		Image:   img,
		Percent: ClampPercent(percent),
	}, nil
}

// DataURI returns the logo as a base64 data URI.
func (l *Logo) DataURI() string {
	return "data:" + l.MIME + ";base64," + base64.StdEncoding.EncodeToString(l.Data)
}

// Size returns the natural width and height of the logo.
func (l *Logo) Size() (int, int) {
	b := l.Image.Bounds()
	return b.Dx(), b.Dy()
}
