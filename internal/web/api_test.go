package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/internal/web"
	"github.com/dmitrymomot/qrgen/pkg/ratelimiter"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) web.APIError {
	t.Helper()
	var body web.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAPIGenerate(t *testing.T) {
	t.Parallel()
	router := newRouter(t, testConfig())

	t.Run("png with default size", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=hello", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
		assert.Equal(t, 256, pngWidth(t, rec.Body.Bytes()))
	})

	sizes := []struct {
		name  string
		query string
		want  int
	}{
		{"exact", "300", 300},
		{"unit suffix", "300px", 300},
		{"below minimum", "50", 128},
		{"above maximum", "9999", 512},
		{"not a number", "abc", 256},
		{"zero", "0", 256},
	}
	for _, tt := range sizes {
		t.Run("size "+tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=hello&size="+url.QueryEscape(tt.query), nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, pngWidth(t, rec.Body.Bytes()))
		})
	}

	t.Run("svg", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=hello&format=svg&dots=rounded", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "<svg")
	})

	errorsCases := []struct {
		name string
		path string
		code string
	}{
		{"missing text", "/api/qr", web.CodeMissingText},
		{"blank text", "/api/qr?text=%20%20", web.CodeMissingText},
		{"text too long", "/api/qr?text=" + strings.Repeat("a", 2001), web.CodeValidation},
		{"unknown format", "/api/qr?text=hi&format=gif", web.CodeValidation},
	}
	for _, tt := range errorsCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
		})
	}
}

func TestAPIGenerateJSON(t *testing.T) {
	t.Parallel()
	router := newRouter(t, testConfig())

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/qr", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("width is clamped", func(t *testing.T) {
		t.Parallel()
		rec := post(`{"text":"hello","width":4096,"fg":"#112233"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 512, pngWidth(t, rec.Body.Bytes()))
	})

	t.Run("width defaults", func(t *testing.T) {
		t.Parallel()
		rec := post(`{"text":"hello"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 256, pngWidth(t, rec.Body.Bytes()))
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		rec := post(`{"text":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, web.CodeParse, decodeAPIError(t, rec).Code)
	})

	t.Run("missing text", func(t *testing.T) {
		t.Parallel()
		rec := post(`{"width":200}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, web.CodeMissingText, decodeAPIError(t, rec).Code)
	})

	t.Run("format name is case insensitive", func(t *testing.T) {
		t.Parallel()
		rec := post(`{"text":"hello","format":"SVG","dots":"dots","corners":"nonsense"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		rec := post(`{"text":"hello","format":"gif"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeAPIError(t, rec)
		assert.Equal(t, web.CodeValidation, body.Code)
		assert.Equal(t, "format must be png or svg", body.Error)
	})
}

func TestAPIRateLimit(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)
	router := newRouter(t, testConfig(), web.WithRateLimiter(limiter))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=one", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=two", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, web.CodeRateLimited, decodeAPIError(t, rec).Code)

	// pages are not limited
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
