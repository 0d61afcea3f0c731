// Package binder fills request structs from HTTP request data.
//
// Each binder is a func(r *http.Request, v any) error and reads one source:
//
//   - Query() reads `query:"name"` tags from the URL query string
//   - JSON() decodes an application/json body (strict, size-capped)
//   - Form() reads `form:"name"` and `file:"name"` tags from urlencoded or multipart bodies
//   - Path(extractor) reads `path:"name"` tags through a router extractor such as chi.URLParam
//   - Signals() decodes datastar signals from the query string (GET) or body
//
// Binders that do not apply to a request, such as JSON() on a GET request, return
// ErrBinderNotApplicable so handler.Wrap can chain several of them:
//
//	r.Get("/api/qr", handler.Wrap(generate,
//		handler.WithBinders[handler.Context, QRRequest](binder.Query(), binder.JSON()),
//	))
//
// Free-text values have NUL bytes and invalid UTF-8 removed; everything else is
// passed through untouched so passwords and messages keep their whitespace.
package binder
