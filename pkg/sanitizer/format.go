package sanitizer

import (
	"regexp"
	"strings"
)

var (
	schemeRegex         = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)
	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)

// EnsureScheme prefixes scheme:// when rawURL has no scheme of its own.
func EnsureScheme(rawURL, scheme string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || schemeRegex.MatchString(rawURL) {
		return rawURL
	}
	return scheme + "://" + rawURL
}

// SanitizeFilename replaces path and reserved characters, trims dots and
// spaces, caps the result at 255 bytes and falls back to "file".
func SanitizeFilename(filename string) string {
	safe := unsafeFilenameRegex.ReplaceAllString(filename, "_")
	safe = strings.Trim(safe, " .")
	if len(safe) > 255 {
		safe = safe[:255]
	}
	if safe == "" {
		safe = "file"
	}
	return safe
}
