package web

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/internal/web/views"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/payload"
	"github.com/dmitrymomot/qrgen/pkg/preview"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
)

var (
	errNothingToDownload = handler.NewHTTPError(http.StatusBadRequest, "nothing_to_download")
	errContentTooLong    = handler.NewHTTPError(http.StatusBadRequest, "content_too_long")
	errInvalidFormat     = handler.NewHTTPError(http.StatusBadRequest, "invalid_format")
)

func statePatches(st preview.State) []handler.TemplPatch {
	return []handler.TemplPatch{
		handler.Patch(views.Warnings(st)),
		handler.Patch(views.Preview(st)),
	}
}

// previewUpdate applies the visitor's latest input. The response carries
// warnings and the pending state; the rendered image follows on the stream.
func (a *App) previewUpdate() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, sig previewSignals) handler.Response {
			in, err := sig.input()
			if err != nil {
				return fail(err)
			}
			st := a.previews.Session(visitorID(ctx.Request())).Update(in)
			return handler.TemplMulti(statePatches(st)...)
		},
		handler.WithBinder[handler.Context, previewSignals](binder.Signals()),
		handler.WithErrorHandler[handler.Context, previewSignals](a.errorHandler),
	)
}

// previewStream pushes every preview state until the client goes away.
func (a *App) previewStream() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, sig previewSignals) handler.Response {
			in, err := sig.input()
			if err != nil {
				return fail(err)
			}
			s := a.previews.Session(visitorID(ctx.Request()))
			s.Update(in)

			return handler.SSE(func(stream handler.StreamContext) error {
				updates, cancel := s.Subscribe()
				defer a.previews.Drop(s)
				defer cancel()

				for {
					select {
					case <-stream.Done():
						return nil
					case st, ok := <-updates:
						if !ok {
							return nil
						}
						if err := stream.SendMultiple(statePatches(st)...); err != nil {
							a.log.DebugContext(stream, "preview stream closed", logger.Error(err))
							return nil
						}
					}
				}
			})
		},
		handler.WithBinder[handler.Context, previewSignals](binder.Signals()),
		handler.WithErrorHandler[handler.Context, previewSignals](a.errorHandler),
	)
}

type imageRequest struct {
	Handle string `path:"handle"`
}

// previewImage serves a preview handle until it is released.
func (a *App) previewImage() http.HandlerFunc {
	return handler.Wrap(
		func(_ handler.Context, req imageRequest) handler.Response {
			img, ok := a.images.Get(preview.Handle(req.Handle))
			if !ok {
				return fail(handler.ErrNotFound)
			}
			return handler.File(img.Data, img.ContentType(), handler.WithCacheControl("no-store"))
		},
		handler.WithBinder[handler.Context, imageRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, imageRequest](a.errorHandler),
	)
}

type logoRequest struct {
	Percent int                   `form:"logo_percent"`
	Logo    *multipart.FileHeader `file:"logo"`
}

// logoUpload sets the session logo. Without a file it only resizes the
// current logo.
func (a *App) logoUpload() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req logoRequest) handler.Response {
			s := a.previews.Session(visitorID(ctx.Request()))

			var l *logo.Logo
			if req.Logo == nil {
				_, cur := s.Snapshot()
				if cur == nil {
					return handler.Templ(views.LogoStatus(false, 0, "Choose a PNG or JPEG logo."))
				}
				resized := *cur
				if req.Percent != 0 {
					resized.Percent = logo.ClampPercent(req.Percent)
				}
				l = &resized
			} else {
				var err error
				l, err = readLogo(req.Logo, req.Percent, a.cfg.MaxLogoBytes)
				if err != nil {
					a.log.DebugContext(ctx, "logo rejected", logger.Error(err))
					return handler.Templ(views.LogoStatus(false, 0, logoMessage(err, a.cfg.MaxLogoBytes)))
				}
			}

			st := s.SetLogo(l)
			return handler.TemplMulti(
				handler.Patch(views.LogoStatus(true, l.Percent, "")),
				handler.Patch(views.Preview(st)),
			)
		},
		handler.WithBinder[handler.Context, logoRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, logoRequest](a.errorHandler),
	)
}

func (a *App) logoClear() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			patches := []handler.TemplPatch{handler.Patch(views.LogoStatus(false, 0, ""))}
			if s, ok := a.previews.Lookup(visitorID(ctx.Request())); ok {
				patches = append(patches, handler.Patch(views.Preview(s.SetLogo(nil))))
			}
			return handler.TemplMulti(patches...)
		},
		handler.WithErrorHandler[handler.Context, struct{}](a.errorHandler),
	)
}

type downloadRequest struct {
	Format qrcode.Format `query:"format"`
}

// formatBinder reports an unknown ?format= as errInvalidFormat instead of a
// generic binding failure.
func formatBinder(bind handler.Bind) handler.Bind {
	return func(r *http.Request, v any) error {
		err := bind(r, v)
		if errors.Is(err, qrcode.ErrUnsupportedFormat) {
			return errors.Join(errInvalidFormat, err)
		}
		return err
	}
}

// download renders the visitor's code at the full requested size.
func (a *App) download() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req downloadRequest) handler.Response {
			s, ok := a.previews.Lookup(visitorID(ctx.Request()))
			if !ok {
				return fail(errNothingToDownload)
			}
			in, l := s.Snapshot()
			text, err := payload.Encode(in.ContentType, in.Fields)
			if err != nil {
				return fail(errNothingToDownload)
			}

			style := in.Style
			if req.Format != "" {
				style.Format = req.Format
			}

			res, err := a.renderer.Render(ctx, render.Request{Payload: text, Style: style, Logo: l})
			switch {
			case errors.Is(err, qrcode.ErrContentTooLong):
				return fail(errContentTooLong)
			case errors.Is(err, qrcode.ErrEmptyContent):
				return fail(errNothingToDownload)
			case err != nil:
				return fail(errors.Join(handler.ErrInternalServerError, err))
			}

			opts := []handler.FileOption{
				handler.WithAttachment(res.Image.Filename()),
				handler.WithCacheControl("no-store"),
			}
			if res.LogoErr != nil {
				opts = append(opts, handler.WithHeader("X-Logo-Error", preview.MsgLogoFailed))
			}
			return handler.File(res.Image.Data, res.Image.ContentType(), opts...)
		},
		handler.WithBinder[handler.Context, downloadRequest](formatBinder(binder.Query())),
		handler.WithErrorHandler[handler.Context, downloadRequest](a.errorHandler),
	)
}
