package web

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/binder"
	"github.com/dmitrymomot/qrgen/pkg/file"
	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/payload"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
	"github.com/dmitrymomot/qrgen/pkg/sanitizer"
)

// composeRequest is the multipart body of /api/qr/compose. Payload fields
// use the same names as payload.Fields form tags.
type composeRequest struct {
	ContentType string `form:"content_type"`

	Text      string       `form:"text"`
	SSID      string       `form:"ssid"`
	Password  string       `form:"password"`
	Auth      payload.Auth `form:"auth"`
	FirstName string       `form:"first_name"`
	LastName  string       `form:"last_name"`
	Email     string       `form:"email"`
	Company   string       `form:"company"`
	Website   string       `form:"website"`
	Phone     string       `form:"phone"`
	Message   string       `form:"message"`

	Size         int                `form:"size"`
	FG           string             `form:"fg"`
	BG           string             `form:"bg"`
	Dots         qrcode.DotStyle    `form:"dots"`
	Corners      qrcode.CornerStyle `form:"corners"`
	MatchCorners bool               `form:"match_corners"`
	Format       qrcode.Format      `form:"format"`

	LogoPercent int                   `form:"logo_percent"`
	Logo        *multipart.FileHeader `file:"logo"`
}

func (c composeRequest) fields() payload.Fields {
	return payload.Fields{
		Text:      c.Text,
		SSID:      c.SSID,
		Password:  c.Password,
		Auth:      c.Auth,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Company:   c.Company,
		Website:   c.Website,
		Phone:     c.Phone,
		Message:   c.Message,
	}
}

// apiCompose encodes any content type, optionally with a logo, and returns
// the code as an attachment.
func (a *App) apiCompose() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req composeRequest) handler.Response {
			ct, err := payload.ParseContentType(req.ContentType)
			if err != nil {
				return apiError(http.StatusBadRequest, CodeValidation, "content_type is not supported")
			}
			fields := req.fields()
			text, err := payload.Encode(ct, fields)
			if errors.Is(err, payload.ErrNoContent) {
				return apiError(http.StatusBadRequest, CodeMissingText, "Nothing to encode for "+ct.Label())
			} else if err != nil {
				return apiError(http.StatusBadRequest, CodeValidation, err.Error())
			}

			var l *logo.Logo
			if req.Logo != nil {
				l, err = readLogo(req.Logo, req.LogoPercent, a.cfg.MaxLogoBytes)
				switch {
				case errors.Is(err, file.ErrFileTooLarge):
					return apiError(http.StatusRequestEntityTooLarge, CodeLogoTooLarge, logoMessage(err, a.cfg.MaxLogoBytes))
				case err != nil:
					return apiError(http.StatusUnsupportedMediaType, CodeUnsupportedLogo, logoMessage(err, a.cfg.MaxLogoBytes))
				}
			}

			res, err := a.renderer.Render(ctx, render.Request{
				Payload: text,
				Style: render.Style{
					Size:         sanitizer.Clamp(req.Size, 0, a.renderer.MaxSize()),
					Foreground:   req.FG,
					Background:   req.BG,
					Dots:         req.Dots,
					Corners:      req.Corners,
					MatchCorners: req.MatchCorners,
					Format:       req.Format,
				},
				Logo: l,
			})
			if err != nil {
				return a.renderError(ctx, err)
			}

			opts := []handler.FileOption{
				handler.WithAttachment(res.Image.Filename()),
				handler.WithCacheControl("no-store"),
			}
			if res.LogoErr != nil {
				opts = append(opts, handler.WithHeader("X-Logo-Error", "LOGO_FAILED"))
			}
			if warnings := payload.Validate(ct, fields); len(warnings) > 0 {
				opts = append(opts, handler.WithHeader("X-Field-Warnings", strings.Join(warnings.Fields(), ",")))
			}
			return handler.File(res.Image.Data, res.Image.ContentType(), opts...)
		},
		handler.WithBinder[handler.Context, composeRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, composeRequest](a.apiErrorHandler),
	)
}
