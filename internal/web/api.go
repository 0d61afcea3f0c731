package web

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
	"github.com/dmitrymomot/qrgen/pkg/sanitizer"
)

// Public API size bounds, in pixels.
const (
	apiMinSize     = 128
	apiMaxSize     = 512
	apiDefaultSize = 256
)

// apiQuery keeps Size a string so "300px" and other loose input still parse.
type apiQuery struct {
	Text    string             `query:"text"`
	Size    string             `query:"size"`
	FG      string             `query:"fg"`
	BG      string             `query:"bg"`
	Format  qrcode.Format      `query:"format"`
	Dots    qrcode.DotStyle    `query:"dots"`
	Corners qrcode.CornerStyle `query:"corners"`
}

type apiBody struct {
	Text         string             `json:"text"`
	Width        *float64           `json:"width"`
	FG           string             `json:"fg"`
	BG           string             `json:"bg"`
	Format       qrcode.Format      `json:"format"`
	Dots         qrcode.DotStyle    `json:"dots"`
	Corners      qrcode.CornerStyle `json:"corners"`
	MatchCorners bool               `json:"matchCorners"`
}

func (a *App) apiGenerate() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, q apiQuery) handler.Response {
			size := apiDefaultSize
			if q.Size != "" {
				if n, ok := parseLeadingInt(q.Size); ok && n != 0 {
					size = sanitizer.Clamp(n, apiMinSize, apiMaxSize)
				}
			}
			return a.generate(ctx, q.Text, size, render.Style{
				Foreground: q.FG,
				Background: q.BG,
				Dots:       q.Dots,
				Corners:    q.Corners,
				Format:     q.Format,
			})
		},
		handler.WithBinder[handler.Context, apiQuery](binder.Query()),
		handler.WithErrorHandler[handler.Context, apiQuery](a.apiErrorHandler),
	)
}

func (a *App) apiGenerateJSON() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, b apiBody) handler.Response {
			size := apiDefaultSize
			if b.Width != nil && !math.IsNaN(*b.Width) {
				size = int(sanitizer.Clamp(*b.Width, apiMinSize, apiMaxSize))
			}
			return a.generate(ctx, b.Text, size, render.Style{
				Foreground:   b.FG,
				Background:   b.BG,
				Dots:         b.Dots,
				Corners:      b.Corners,
				MatchCorners: b.MatchCorners,
				Format:       b.Format,
			})
		},
		handler.WithBinder[handler.Context, apiBody](binder.JSON()),
		handler.WithErrorHandler[handler.Context, apiBody](a.apiErrorHandler),
	)
}

func (a *App) generate(ctx context.Context, text string, size int, style render.Style) handler.Response {
	text = sanitizer.Trim(text)
	if text == "" {
		return apiError(http.StatusBadRequest, CodeMissingText, `Missing required parameter: "text"`)
	}
	if utf8.RuneCountInString(text) > a.cfg.maxPayload() {
		return apiError(http.StatusBadRequest, CodeValidation, fmt.Sprintf("text must be at most %d characters", a.cfg.maxPayload()))
	}
	style.Size = size
	res, err := a.renderer.Render(ctx, render.Request{Payload: text, Style: style})
	if err != nil {
		return a.renderError(ctx, err)
	}
	return handler.File(res.Image.Data, res.Image.ContentType(),
		handler.WithCacheControl("public, max-age=86400"),
	)
}

// renderError maps a render failure to an API error.
func (a *App) renderError(ctx context.Context, err error) handler.Response {
	switch {
	case errors.Is(err, qrcode.ErrEmptyContent):
		return apiError(http.StatusBadRequest, CodeMissingText, "Nothing to encode")
	case errors.Is(err, qrcode.ErrContentTooLong):
		return apiError(http.StatusBadRequest, CodeValidation, fmt.Sprintf("text must be at most %d characters", a.cfg.maxPayload()))
	case errors.Is(err, qrcode.ErrUnsupportedFormat):
		return apiError(http.StatusBadRequest, CodeValidation, "format must be png or svg")
	}
	a.log.ErrorContext(ctx, "qr generation failed", logger.Error(err))
	return apiError(http.StatusInternalServerError, CodeInternal, "Failed to generate QR code")
}

// apiErrorHandler answers binding and rendering failures with the API error body.
func (a *App) apiErrorHandler(ctx handler.Context, err error) {
	resp := apiError(http.StatusInternalServerError, CodeInternal, "Failed to generate QR code")
	switch {
	case errors.Is(err, qrcode.ErrUnsupportedFormat):
		resp = apiError(http.StatusBadRequest, CodeValidation, "format must be png or svg")
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		resp = apiError(http.StatusBadRequest, CodeParse, "Invalid JSON in request body")
	case errors.Is(err, binder.ErrInvalidForm), errors.Is(err, binder.ErrInvalidQuery):
		resp = apiError(http.StatusBadRequest, CodeValidation, "Invalid request parameters")
	default:
		a.log.ErrorContext(ctx, "api request failed", logger.Error(err))
	}
	_ = resp.Render(ctx.ResponseWriter(), ctx.Request())
}

// parseLeadingInt reads an optionally signed run of leading digits, ignoring
// whatever follows, so "300px" yields 300.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
