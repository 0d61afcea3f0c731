// Package qrcode renders QR codes as PNG or SVG images.
//
// The package wraps github.com/skip2/go-qrcode for symbol encoding and paints
// the module grid itself so both raster and vector output share the same
// styling: foreground and background colors, dot shapes for data modules and
// corner shapes for the three finder patterns.
//
// # Architecture
//
// Encode is the main entry point. It validates the content, asks the upstream
// library for the module bitmap at the requested error-correction level and
// then renders the grid:
//
//   - PNG output is painted onto an image.RGBA canvas of exactly the requested
//     size (modules are scaled by an integer factor and centered) and encoded.
//   - SVG output uses a view box measured in modules, with width and height
//     attributes carrying the pixel size.
//
// Generate and GenerateBase64Image are shorthands for a default-styled PNG.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrgen/pkg/qrcode"
//
//	img, err := qrcode.Encode("https://example.com", qrcode.Options{
//		Size:       512,
//		Foreground: "#1f2937",
//		Level:      qrcode.LevelHigh,
//		Dots:       qrcode.DotRounded,
//		Format:     qrcode.SVG,
//	})
//	if err != nil {
//		// handle error
//	}
//	w.Header().Set("Content-Type", img.ContentType())
//	w.Write(img.Data)
//
// # Error Handling
//
//   - ErrEmptyContent             – the content argument was empty.
//   - ErrContentTooLong           – the content exceeds MaxContentLength characters.
//   - ErrUnsupportedFormat        – the format is neither PNG nor SVG.
//   - ErrorFailedToGenerateQRCode – the underlying library could not
//     generate the QR code.
//
// Malformed colors are not errors: they fall back to DefaultForeground and
// DefaultBackground.
package qrcode
