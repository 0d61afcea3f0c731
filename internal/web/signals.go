package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/payload"
	"github.com/dmitrymomot/qrgen/pkg/preview"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
)

var errInvalidContentType = handler.NewHTTPError(http.StatusBadRequest, "invalid_content_type")

// flexInt accepts a JSON number or a numeric string; select elements bound
// to a signal may report either.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*n = flexInt(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = flexInt(f)
	return nil
}

type styleSignals struct {
	Size         flexInt `json:"size"`
	FG           string  `json:"fg"`
	BG           string  `json:"bg"`
	Dots         string  `json:"dots"`
	Corners      string  `json:"corners"`
	MatchCorners bool    `json:"matchCorners"`
	Format       string  `json:"format"`
}

// previewSignals is the signal tree the generator form sends.
type previewSignals struct {
	ContentType string         `json:"contentType"`
	Fields      payload.Fields `json:"fields"`
	Style       styleSignals   `json:"style"`
}

func (s previewSignals) input() (preview.Input, error) {
	ct, err := payload.ParseContentType(s.ContentType)
	if err != nil {
		return preview.Input{}, errInvalidContentType
	}
	format, err := qrcode.ParseFormat(s.Style.Format)
	if err != nil {
		format = qrcode.PNG
	}
	return preview.Input{
		ContentType: ct,
		Fields:      s.Fields,
		Style: render.Style{
			Size:         int(s.Style.Size),
			Foreground:   s.Style.FG,
			Background:   s.Style.BG,
			Dots:         qrcode.ParseDotStyle(s.Style.Dots),
			Corners:      qrcode.ParseCornerStyle(s.Style.Corners),
			MatchCorners: s.Style.MatchCorners,
			Format:       format,
		},
	}, nil
}
