package render

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrgen/pkg/cache"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

const (
	DefaultPreviewMax = 512
	DefaultMaxSize    = 2048
	DefaultCacheSize  = 256
)

// Result is a finished render.
type Result struct {
	Image *qrcode.Image
	Level qrcode.Level
	// RequestedSize is the size asked for; Image.Size may be smaller for previews.
	RequestedSize int
	// Scaled is true when the image is a scaled-down preview of the download.
	Scaled bool
	// LogoErr is set when the logo could not be applied. Image then holds the plain code.
	LogoErr error
}

// Service renders codes. It is safe for concurrent use.
type Service struct {
	previewMax int
	maxSize    int
	cache      *cache.LRUCache[string, *qrcode.Image]
	metrics    *metrics.Metrics
	log        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithPreviewMax(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.previewMax = px
		}
	}
}

func WithMaxSize(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.maxSize = px
		}
	}
}

// WithCacheSize sets the result cache capacity. Zero or less disables caching.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		if n <= 0 {
			s.cache = nil
			return
		}
		s.cache = cache.NewLRUCache[string, *qrcode.Image](n)
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		previewMax: DefaultPreviewMax,
		maxSize:    DefaultMaxSize,
		cache:      cache.NewLRUCache[string, *qrcode.Image](DefaultCacheSize),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PreviewMax returns the preview dimension cap.
func (s *Service) PreviewMax() int { return s.previewMax }

// MaxSize returns the largest size Render accepts.
func (s *Service) MaxSize() int { return s.maxSize }

// Render produces the image at the requested size, bounded by MaxSize.
func (s *Service) Render(ctx context.Context, req Request) (*Result, error) {
	size := s.normalizeSize(req.Style.Size)
	return s.render(ctx, req, size, size)
}

// Preview produces the image at min(requested size, PreviewMax).
func (s *Service) Preview(ctx context.Context, req Request) (*Result, error) {
	size := s.normalizeSize(req.Style.Size)
	return s.render(ctx, req, size, min(size, s.previewMax))
}

func (s *Service) normalizeSize(px int) int {
	if px <= 0 {
		px = DefaultPreviewMax / 2
	}
	return min(px, s.maxSize)
}

func (s *Service) render(ctx context.Context, req Request, requested, px int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := req.Style.Format
	if format == "" {
		format = qrcode.PNG
	}
	req.Style.Format = format

	level := LevelFor(req.Logo != nil)
	key := req.key(px)
	if s.cache != nil {
		if img, ok := s.cache.Get(key); ok {
			s.metrics.ObserveRender(string(format), metrics.ResultCached, 0)
			return newResult(img, level, requested, px), nil
		}
	}

	start := time.Now()
	base, err := qrcode.Encode(req.Payload, qrcode.Options{
		Size:         px,
		Foreground:   req.Style.Foreground,
		Background:   req.Style.Background,
		Level:        level,
		Dots:         req.Style.Dots,
		Corners:      req.Style.Corners,
		MatchCorners: req.Style.MatchCorners,
		Format:       format,
	})
	if err != nil {
		s.metrics.ObserveRender(string(format), metrics.ResultError, time.Since(start))
		if isInputError(err) {
			return nil, err
		}
		s.log.ErrorContext(ctx, "qr acquisition failed",
			logger.Component("render"),
			logger.ImageFormat(string(format)),
			logger.Size(px),
			logger.Error(err),
		)
		return nil, errors.Join(ErrAcquire, err)
	}

	res := newResult(base, level, requested, px)

	outcome := metrics.ResultOK
	if req.Logo != nil {
		img, err := s.composite(base, req)
		if err != nil {
			outcome = metrics.ResultFallback
			res.LogoErr = errors.Join(ErrComposite, err)
			s.metrics.CompositeFailed(string(format))
			s.log.WarnContext(ctx, "logo composite failed, serving plain code",
				logger.Component("render"),
				logger.ImageFormat(string(format)),
				logger.Error(err),
			)
		} else {
			res.Image = img
		}
	}

	s.metrics.ObserveRender(string(format), outcome, time.Since(start))
	if s.cache != nil && res.LogoErr == nil {
		s.cache.Put(key, res.Image)
	}
	return res, nil
}

// newResult describes img, rendered at px, against the size the caller
// asked for. Requests with different sizes can cap to the same cached
// preview, so Scaled is never taken from the cache.
func newResult(img *qrcode.Image, level qrcode.Level, requested, px int) *Result {
	return &Result{
		Image:         img,
		Level:         level,
		RequestedSize: requested,
		Scaled:        requested > px,
	}
}

func (s *Service) composite(base *qrcode.Image, req Request) (*qrcode.Image, error) {
	bg := qrcode.ParseHexColor(req.Style.Background, qrcode.DefaultBackground)

	if base.Format == qrcode.SVG {
		data, err := logo.CompositeSVG(base.Data, req.Logo, bg, base.Size)
		if err != nil {
			return nil, err
		}
		return &qrcode.Image{Format: qrcode.SVG, Data: data, Size: base.Size}, nil
	}

	raster := base.Raster
	if raster == nil {
		var err error
		if raster, err = logo.DecodeBase(base.Data); err != nil {
			return nil, err
		}
	}
	img, err := logo.Composite(raster, req.Logo, bg)
	if err != nil {
		return nil, err
	}
	data, err := logo.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &qrcode.Image{Format: qrcode.PNG, Data: data, Size: img.Bounds().Dx(), Raster: img}, nil
}

func isInputError(err error) bool {
	return errors.Is(err, qrcode.ErrEmptyContent) ||
		errors.Is(err, qrcode.ErrContentTooLong) ||
		errors.Is(err, qrcode.ErrUnsupportedFormat)
}
