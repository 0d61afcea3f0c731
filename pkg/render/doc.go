// Package render turns an encoded payload and a style into a finished QR image.
//
// A render acquires the base code from pkg/qrcode and, when a logo is set,
// composites it with pkg/logo. The error-correction level is fixed by whether
// a logo is present: LevelHigh with a logo, LevelMedium without.
//
// Preview renders are capped at a maximum dimension; Render always uses the
// requested size. Results are memoized in an LRU keyed by every input that
// affects the output.
//
// Failures are split in two classes. Acquisition failures return an error
// wrapping ErrAcquire. Logo failures do not fail the render: the QR-only image
// is returned with Result.LogoErr wrapping ErrComposite.
package render
