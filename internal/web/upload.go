package web

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/dmitrymomot/qrgen/pkg/file"
	"github.com/dmitrymomot/qrgen/pkg/logo"
)

// readLogo decodes an uploaded logo. A zero percent selects the default.
func readLogo(fh *multipart.FileHeader, percent int, maxBytes int64) (*logo.Logo, error) {
	if err := file.ValidateSize(fh, maxBytes); err != nil {
		return nil, err
	}
	if err := file.ValidateMIMEType(fh, "image/png", "image/jpeg"); err != nil {
		if errors.Is(err, file.ErrMIMETypeNotAllowed) {
			return nil, errors.Join(logo.ErrUnsupportedType, err)
		}
		return nil, err
	}
	data, err := file.ReadLimited(fh, maxBytes)
	if err != nil {
		return nil, err
	}
	if percent == 0 {
		percent = logo.DefaultPercent
	}
	return logo.Decode(data, percent)
}

// logoMessage is the visitor-facing text for a logo upload failure.
func logoMessage(err error, maxBytes int64) string {
	switch {
	case errors.Is(err, file.ErrFileTooLarge):
		return fmt.Sprintf("Logo must be at most %d KB.", maxBytes>>10)
	case errors.Is(err, logo.ErrUnsupportedType):
		return "Logo must be a PNG or JPEG image."
	default:
		return "Could not read the logo image."
	}
}
