// Package handler provides typed HTTP handlers and the responses they return.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// (see pkg/binder) and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	type DownloadRequest struct {
//		Format string `query:"format"`
//	}
//
//	download := func(ctx handler.Context, req DownloadRequest) handler.Response {
//		res, err := renderer.Render(ctx, renderRequest(req))
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.File(res.Image.Data, res.Image.ContentType(),
//			handler.WithAttachment(res.Image.Filename()))
//	}
//
//	r.Get("/download", handler.Wrap(download,
//		handler.WithBinder[handler.Context, DownloadRequest](binder.Query()),
//	))
//
// # Responses
//
//   - JSON, JSONError: the {data, meta, error} envelope
//   - File: raw bytes such as PNG or SVG images, optionally as an attachment
//   - Templ, TemplPartial, TemplMulti: templ components, patched over SSE for datastar requests
//   - SSE: a long-lived datastar stream driven through StreamContext
//   - Empty, EmptyWithStatus: status only
//
// # Errors
//
// Binding and render errors go to the configured ErrorHandler. HTTPError
// carries a status and key; ValidationError carries per-field messages and
// FromValidator converts pkg/validator results. NewErrorHandler answers with
// a toast, the JSON envelope or an error page depending on the request.
//
// # Custom contexts
//
// Applications embed Context in their own type and pass a constructor through
// WithContextFactory to get typed accessors in every handler.
package handler
