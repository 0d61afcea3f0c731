package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/internal/web/views"
	"github.com/dmitrymomot/qrgen/pkg/clientip"
	"github.com/dmitrymomot/qrgen/pkg/cookie"
	"github.com/dmitrymomot/qrgen/pkg/environment"
	"github.com/dmitrymomot/qrgen/pkg/httpserver"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
	"github.com/dmitrymomot/qrgen/pkg/pages"
	"github.com/dmitrymomot/qrgen/pkg/preview"
	"github.com/dmitrymomot/qrgen/pkg/ratelimiter"
	"github.com/dmitrymomot/qrgen/pkg/render"
	"github.com/dmitrymomot/qrgen/pkg/requestid"
)

// App holds the services behind the HTTP routes.
type App struct {
	cfg     Config
	env     environment.Environment
	log     *slog.Logger
	cookies *cookie.Manager
	pages   *pages.Catalog

	renderer *render.Service
	images   *preview.Registry
	previews *preview.Manager

	limiter        ratelimiter.RateLimiter
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	checks         []httpserver.Check
	clock          preview.Clock

	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures an App.
type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics records service metrics in m and serves h on /metrics.
func WithMetrics(m *metrics.Metrics, h http.Handler) Option {
	return func(a *App) {
		a.metrics = m
		a.metricsHandler = h
	}
}

// WithRateLimiter guards the /api routes.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(a *App) { a.limiter = l }
}

// WithReadinessCheck adds a dependency to /health/ready.
func WithReadinessCheck(name string, fn func(context.Context) error) Option {
	return func(a *App) {
		a.checks = append(a.checks, httpserver.Check{Name: name, Fn: fn})
	}
}

func WithPages(c *pages.Catalog) Option {
	return func(a *App) {
		if c != nil {
			a.pages = c
		}
	}
}

// WithClock replaces the debounce clock of preview sessions.
func WithClock(c preview.Clock) Option {
	return func(a *App) { a.clock = c }
}

// New wires the render pipeline and preview sessions from cfg.
func New(cfg Config, cookies *cookie.Manager, opts ...Option) *App {
	a := &App{
		cfg:     cfg,
		env:     environment.Parse(cfg.Env),
		log:     slog.New(slog.DiscardHandler),
		cookies: cookies,
		pages:   pages.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("web"))

	a.renderer = render.NewService(
		render.WithPreviewMax(cfg.PreviewMax),
		render.WithMaxSize(cfg.MaxSize),
		render.WithCacheSize(cfg.RenderCache),
		render.WithMetrics(a.metrics),
		render.WithLogger(a.log),
	)
	a.images = preview.NewRegistry(max(cfg.HandleCapacity, 1), a.metrics)

	previewOpts := []preview.Option{
		preview.WithDebounce(cfg.Debounce),
		preview.WithSessionCapacity(cfg.SessionCapacity),
		preview.WithLogger(a.log),
		preview.WithMetrics(a.metrics),
	}
	if a.clock != nil {
		previewOpts = append(previewOpts, preview.WithClock(a.clock))
	}
	a.previews = preview.NewManager(a.renderer, a.images, previewOpts...)

	a.errorHandler = handler.NewErrorHandler(a.log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.Toast,
	})
	return a
}

// Close ends every preview session, stopping timers and releasing images.
func (a *App) Close() {
	a.previews.Close()
}

// Router returns the HTTP handler for all routes.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(a.env),
		canonicalHost(a.cfg.canonicalHost()),
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(a.log, 2*time.Second, a.checks...))
	if a.metricsHandler != nil {
		r.Handle("/metrics", a.metricsHandler)
	}

	r.Route("/api/qr", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, ratelimiter.Composite(ratelimiter.Static("api"), clientip.FromRequest),
				ratelimiter.WithFailOpen(true),
				ratelimiter.WithMiddlewareLogger(a.log),
				ratelimiter.WithLimitedHandler(a.rateLimited),
			))
		}
		r.Get("/", a.apiGenerate())
		r.Post("/", a.apiGenerateJSON())
		r.Post("/compose", a.apiCompose())
	})

	r.Get("/preview/image/{handle}", a.previewImage())

	r.Group(func(r chi.Router) {
		r.Use(visitor(a.cookies, a.env.IsDeployed(), a.log))
		r.Get("/", a.home())
		r.Get("/{slug}", a.landing())
		r.Post("/preview", a.previewUpdate())
		r.Get("/preview/stream", a.previewStream())
		r.Post("/preview/logo", a.logoUpload())
		r.Delete("/preview/logo", a.logoClear())
		r.Get("/download", a.download())
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	return r
}

func (a *App) rateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	a.metrics.Limited("api")
	_ = apiError(http.StatusTooManyRequests, CodeRateLimited, "Too many requests, please slow down").Render(w, r)
}
