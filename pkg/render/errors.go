package render

import "errors"

var (
	// ErrAcquire is returned when the base QR image cannot be produced.
	ErrAcquire = errors.New("render: could not generate code")
	// ErrComposite marks a failure to apply the logo.
	ErrComposite = errors.New("render: could not apply logo")
)
