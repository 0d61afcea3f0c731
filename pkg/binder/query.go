package binder

import "net/http"

// Query creates a URL query binder.
//
// Tags: `query:"name"` binds parameter "name", `query:"-"` skips the field and an
// untagged field binds its lower-cased name. Slices accept repeated or
// comma-separated values; pointers mark optional fields.
//
//	type QRQuery struct {
//		Text   string `query:"text"`
//		Size   int    `query:"size"`
//		Format string `query:"format"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		for k, vs := range values {
			for i := range vs {
				vs[i] = sanitizeStringValue(vs[i])
			}
			values[k] = vs
		}
		return bindToStruct(v, "query", values, ErrInvalidQuery)
	}
}
