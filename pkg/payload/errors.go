package payload

import "errors"

var (
	// ErrNoContent is returned when the input has nothing worth encoding.
	ErrNoContent = errors.New("payload: no content")
	// ErrUnknownContentType is returned for content types outside the supported set.
	ErrUnknownContentType = errors.New("payload: unknown content type")
)
