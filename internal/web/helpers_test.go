package web_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/internal/web"
	"github.com/dmitrymomot/qrgen/pkg/cookie"
)

const testSecret = "test-secret-that-is-long-enough-0123"

func testConfig() web.Config {
	cfg := web.DefaultConfig()
	cfg.Debounce = time.Millisecond
	return cfg
}

func newRouter(t *testing.T, cfg web.Config, opts ...web.Option) http.Handler {
	t.Helper()
	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	app := web.New(cfg, cookies, opts...)
	t.Cleanup(app.Close)
	return app.Router()
}

// visitorCookie returns the visitor cookie issued in resp.
func visitorCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == web.VisitorCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", web.VisitorCookie)
	return nil
}

func logoPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := range 40 {
		for x := range 40 {
			img.Set(x, y, color.NRGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pngWidth(t *testing.T, data []byte) int {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width
}

func isDatastarStream(resp *http.Response) bool {
	return strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream")
}
