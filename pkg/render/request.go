package render

import (
	"fmt"
	"hash/fnv"

	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Style is the user-controlled look of a code.
type Style struct {
	Size         int                `json:"size"`
	Foreground   string             `json:"fg"`
	Background   string             `json:"bg"`
	Dots         qrcode.DotStyle    `json:"dots"`
	Corners      qrcode.CornerStyle `json:"corners"`
	MatchCorners bool               `json:"matchCorners"`
	Format       qrcode.Format      `json:"format"`
}

// Request is a single render input.
type Request struct {
	Payload string
	Style   Style
	Logo    *logo.Logo
}

// LevelFor returns the error-correction level for a render.
func LevelFor(hasLogo bool) qrcode.Level {
	if hasLogo {
		return qrcode.LevelHigh
	}
	return qrcode.LevelMedium
}

// key identifies the output produced by r at size px.
func (r Request) key(px int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%d\x00%s\x00%s\x00%s\x00%s\x00%t\x00%s",
		r.Payload, px, r.Style.Foreground, r.Style.Background,
		r.Style.Dots, r.Style.Corners, r.Style.MatchCorners, r.Style.Format)
	if r.Logo != nil {
		fmt.Fprintf(h, "\x00%d\x00", r.Logo.Percent)
		h.Write(r.Logo.Data)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
