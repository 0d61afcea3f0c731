package qrcode

import "errors"

// Error variables for QR code generation
var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrContentTooLong is returned when content exceeds MaxContentLength characters.
	ErrContentTooLong = errors.New("content is too long")
	// ErrorFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrUnsupportedFormat is returned for output formats other than PNG and SVG.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
