package preview

import (
	"github.com/dmitrymomot/qrgen/pkg/payload"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
	"github.com/dmitrymomot/qrgen/pkg/validator"
)

// User-facing messages.
const (
	MsgGenerateFailed = "Could not generate QR code. Please try again."
	MsgTooLong        = "Content is too long for a QR code (max 2000 characters)."
	MsgLogoFailed     = "Could not apply logo. Showing the code without it."
)

// Input is everything a visitor controls except the logo.
type Input struct {
	ContentType payload.ContentType
	Fields      payload.Fields
	Style       render.Style
}

// State is what the preview shows after the latest change.
type State struct {
	Generation uint64
	// Handle is the image on display; empty when nothing is shown.
	Handle Handle
	Format qrcode.Format
	// Pending is true while a render for Generation is scheduled or running.
	Pending bool
	// Empty is true when the input has no content to encode.
	Empty bool
	// Scaled is true when the preview is smaller than the download.
	Scaled        bool
	PreviewSize   int
	RequestedSize int
	Chars         int
	Warnings      validator.ValidationErrors
	Error         string
	LogoError     string
	HasLogo       bool
}
