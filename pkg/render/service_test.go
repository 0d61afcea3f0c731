package render_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
)

func testLogo(t *testing.T) *logo.Logo {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	l, err := logo.Decode(buf.Bytes(), 25)
	require.NoError(t, err)
	return l
}

func TestLevelFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, qrcode.LevelHigh, render.LevelFor(true))
	assert.Equal(t, qrcode.LevelMedium, render.LevelFor(false))
}

func TestService_Render(t *testing.T) {
	t.Parallel()

	svc := render.NewService()

	res, err := svc.Render(context.Background(), render.Request{
		Payload: "https://example.com",
		Style:   render.Style{Size: 1024},
	})
	require.NoError(t, err)
	assert.Equal(t, 1024, res.Image.Size)
	assert.Equal(t, 1024, res.RequestedSize)
	assert.False(t, res.Scaled)
	assert.Equal(t, qrcode.LevelMedium, res.Level)
	assert.Equal(t, qrcode.PNG, res.Image.Format)
	assert.NoError(t, res.LogoErr)
}

func TestService_PreviewCap(t *testing.T) {
	t.Parallel()

	svc := render.NewService(render.WithPreviewMax(256), render.WithMaxSize(1024))
	ctx := context.Background()

	res, err := svc.Preview(ctx, render.Request{Payload: "hello", Style: render.Style{Size: 4096}})
	require.NoError(t, err)
	assert.Equal(t, 256, res.Image.Size)
	assert.Equal(t, 1024, res.RequestedSize, "requested size is bounded by the maximum")
	assert.True(t, res.Scaled)

	res, err = svc.Preview(ctx, render.Request{Payload: "hello", Style: render.Style{Size: 200}})
	require.NoError(t, err)
	assert.Equal(t, 200, res.Image.Size)
	assert.False(t, res.Scaled)
}

func TestService_WithLogo(t *testing.T) {
	t.Parallel()

	svc := render.NewService()
	ctx := context.Background()
	l := testLogo(t)

	t.Run("png", func(t *testing.T) {
		t.Parallel()
		res, err := svc.Render(ctx, render.Request{
			Payload: "https://example.com",
			Style:   render.Style{Size: 300, Foreground: "000000"},
			Logo:    l,
		})
		require.NoError(t, err)
		require.NoError(t, res.LogoErr)
		assert.Equal(t, qrcode.LevelHigh, res.Level)

		center := color.RGBAModel.Convert(res.Image.Raster.At(150, 150)).(color.RGBA)
		assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, center, "logo covers the center")

		img, err := png.Decode(bytes.NewReader(res.Image.Data))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
	})

	t.Run("svg", func(t *testing.T) {
		t.Parallel()
		res, err := svc.Render(ctx, render.Request{
			Payload: "https://example.com",
			Style:   render.Style{Size: 300, Format: qrcode.SVG},
			Logo:    l,
		})
		require.NoError(t, err)
		require.NoError(t, res.LogoErr)
		svg := string(res.Image.Data)
		assert.Contains(t, svg, "<image ")
		assert.Equal(t, 1, strings.Count(svg, "xmlns:xlink"))
	})
}

func TestService_CompositeFallback(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := render.NewService(render.WithMetrics(m))

	broken := &logo.Logo{Percent: 20}
	res, err := svc.Render(context.Background(), render.Request{Payload: "hello", Logo: broken})
	require.NoError(t, err, "a logo failure keeps the plain code")
	require.ErrorIs(t, res.LogoErr, render.ErrComposite)
	require.ErrorIs(t, res.LogoErr, logo.ErrEmptyLogo)
	require.NotNil(t, res.Image)
	assert.NotEmpty(t, res.Image.Data)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompositeFailures.WithLabelValues("png")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("png", metrics.ResultFallback)))
}

func TestService_Errors(t *testing.T) {
	t.Parallel()

	svc := render.NewService()
	ctx := context.Background()

	_, err := svc.Render(ctx, render.Request{Payload: "  "})
	require.ErrorIs(t, err, qrcode.ErrEmptyContent)

	_, err = svc.Render(ctx, render.Request{Payload: strings.Repeat("x", qrcode.MaxContentLength+1)})
	require.ErrorIs(t, err, qrcode.ErrContentTooLong)
	assert.NotErrorIs(t, err, render.ErrAcquire)

	// 2000 bytes cannot fit a symbol at the high level a logo requires
	_, err = svc.Render(ctx, render.Request{Payload: strings.Repeat("x", qrcode.MaxContentLength), Logo: testLogo(t)})
	require.ErrorIs(t, err, render.ErrAcquire)
	require.ErrorIs(t, err, qrcode.ErrorFailedToGenerateQRCode)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Render(cancelled, render.Request{Payload: "hello"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestService_Cache(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())
	svc := render.NewService(render.WithMetrics(m))
	ctx := context.Background()
	req := render.Request{Payload: "cached", Style: render.Style{Size: 128}}

	first, err := svc.Render(ctx, req)
	require.NoError(t, err)
	second, err := svc.Render(ctx, req)
	require.NoError(t, err)

	assert.Same(t, first.Image, second.Image)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("png", metrics.ResultCached)))

	req.Style.Foreground = "ff0000"
	third, err := svc.Render(ctx, req)
	require.NoError(t, err)
	assert.NotSame(t, first.Image, third.Image)
}

func TestService_CachedPreviewKeepsRequestedSize(t *testing.T) {
	t.Parallel()

	svc := render.NewService(render.WithPreviewMax(512), render.WithMaxSize(2048))
	ctx := context.Background()
	req := render.Request{Payload: "https://example.com", Style: render.Style{Size: 512}}

	small, err := svc.Preview(ctx, req)
	require.NoError(t, err)
	assert.False(t, small.Scaled)
	assert.Equal(t, 512, small.RequestedSize)

	req.Style.Size = 2048
	large, err := svc.Preview(ctx, req)
	require.NoError(t, err)
	assert.Same(t, small.Image, large.Image, "both cap to the same preview")
	assert.True(t, large.Scaled)
	assert.Equal(t, 2048, large.RequestedSize)
	assert.Equal(t, 512, large.Image.Size)

	req.Style.Size = 512
	again, err := svc.Preview(ctx, req)
	require.NoError(t, err)
	assert.False(t, again.Scaled)
	assert.Equal(t, 512, again.RequestedSize)
}
