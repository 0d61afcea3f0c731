// Package sanitizer holds small string and number clean-up helpers used on
// user input before it is encoded into QR payloads.
//
// Each helper is a pure func(T) T (or close to it), so they chain with Apply
// or Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
//	website := sanitizer.EnsureScheme(clean(input), "https")
package sanitizer
