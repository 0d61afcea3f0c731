// Package pages holds the table of generator landing pages.
//
// Each page maps a URL slug to the content type the generator starts with and
// the copy shown above it. The table is compiled into the binary from
// pages.yaml; Load parses an alternative table for tests and overrides.
//
//	cat := pages.Default()
//	p, ok := cat.Lookup("wifi-qr-generator")
//	if !ok {
//		// 404
//	}
package pages
