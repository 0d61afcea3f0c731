package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/internal/web/views"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/pages"
	"github.com/dmitrymomot/qrgen/pkg/preview"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
)

// defaultStyle is the style a fresh generator starts with.
var defaultStyle = render.Style{
	Size:       256,
	Foreground: "#000000",
	Background: "#ffffff",
	Dots:       qrcode.DotSquare,
	Corners:    qrcode.CornerSquare,
	Format:     qrcode.PNG,
}

type landingRequest struct {
	Slug string `path:"slug"`
}

func (a *App) home() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			return a.renderPage(ctx.Request(), a.pages.Home())
		},
		handler.WithErrorHandler[handler.Context, struct{}](a.errorHandler),
	)
}

func (a *App) landing() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req landingRequest) handler.Response {
			p, ok := a.pages.Lookup(req.Slug)
			if !ok {
				return fail(handler.ErrNotFound)
			}
			return a.renderPage(ctx.Request(), p)
		},
		handler.WithBinder[handler.Context, landingRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, landingRequest](a.errorHandler),
	)
}

// renderPage starts the visitor over: a page load drops any previous
// preview session together with its logo.
func (a *App) renderPage(r *http.Request, p pages.Page) handler.Response {
	a.previews.End(visitorID(r))

	body := views.GeneratorForm(views.Generator{
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		ContentType: p.ContentType,
		Style:       defaultStyle,
		State:       preview.State{Empty: true},
	})
	meta := views.Meta{
		Title:       p.MetadataTitle,
		Description: p.Description,
		Canonical:   strings.TrimRight(a.cfg.BaseURL, "/") + p.Path(),
	}
	for _, g := range a.pages.Generators() {
		meta.Nav = append(meta.Nav, views.NavLink{Label: g.ContentType.Label(), Href: g.Path()})
	}
	return handler.TemplPartial(body, views.Layout(meta, body))
}
