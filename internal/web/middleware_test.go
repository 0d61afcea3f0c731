package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/internal/web"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
)

func TestCanonicalHost(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.BaseURL = "https://qrgen.example"
	router := newRouter(t, cfg)

	tests := []struct {
		name     string
		target   string
		proto    string
		status   int
		location string
	}{
		{"www redirects to canonical", "http://www.qrgen.example/wifi-qr-generator?x=1", "", http.StatusMovedPermanently, "https://qrgen.example/wifi-qr-generator?x=1"},
		{"plain http redirects to https", "http://qrgen.example/", "http", http.StatusMovedPermanently, "https://qrgen.example/"},
		{"https canonical passes", "http://qrgen.example/", "https", http.StatusOK, ""},
		{"localhost passes", "http://localhost:8080/", "http", http.StatusOK, ""},
		{"other www host passes", "http://www.other.example/", "", http.StatusOK, ""},
		{"www over plain http is one hop", "http://www.qrgen.example/?x=1", "http", http.StatusMovedPermanently, "https://qrgen.example/?x=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}
		})
	}
}

func TestVisitorCookie(t *testing.T) {
	t.Parallel()
	router := newRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	issued := visitorCookie(t, rec.Result())
	assert.True(t, issued.HttpOnly)

	t.Run("valid cookie is kept", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(issued)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("tampered cookie is replaced", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: web.VisitorCookie, Value: issued.Value + "x"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEqual(t, issued.Value, visitorCookie(t, rec.Result()).Value)
	})
}

func TestOpsEndpoints(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	router := newRouter(t, testConfig(),
		web.WithMetrics(metrics.New(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		web.WithReadinessCheck("always", func(context.Context) error { return nil }),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "qrgen_renders_total")
}

func TestReadinessFailure(t *testing.T) {
	t.Parallel()
	router := newRouter(t, testConfig(),
		web.WithReadinessCheck("redis", func(context.Context) error { return assert.AnError }),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
