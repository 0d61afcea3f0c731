package logo

import "errors"

var (
	ErrUnsupportedType = errors.New("logo: only PNG and JPEG images are supported")
	ErrDecodeLogo      = errors.New("logo: failed to decode image")
	ErrEmptyLogo       = errors.New("logo: image is empty")
	ErrInvalidSVG      = errors.New("logo: invalid SVG document")
	ErrSurface         = errors.New("logo: drawing surface unavailable")
	ErrEncode          = errors.New("logo: failed to encode image")
)
