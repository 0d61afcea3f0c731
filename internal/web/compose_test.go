package web_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/internal/web"
)

type upload struct {
	name string
	data []byte
}

func composeRequest(t *testing.T, fields map[string]string, logo *upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if logo != nil {
		fw, err := mw.CreateFormFile("logo", logo.name)
		require.NoError(t, err)
		_, err = fw.Write(logo.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/qr/compose", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAPICompose(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.MaxLogoBytes = 64 << 10
	router := newRouter(t, cfg)

	t.Run("wifi svg", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, composeRequest(t, map[string]string{
			"content_type": "wifi",
			"ssid":         "Home",
			"password":     "secret",
			"auth":         "WPA",
			"format":       "svg",
		}, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="qrcode.svg"`, rec.Header().Get("Content-Disposition"))
		assert.Empty(t, rec.Header().Get("X-Logo-Error"))
	})

	t.Run("png with logo", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, composeRequest(t, map[string]string{
			"content_type": "url",
			"text":         "https://example.com",
			"size":         "600",
			"logo_percent": "25",
		}, &upload{name: "logo.png", data: logoPNG(t)}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, 600, pngWidth(t, rec.Body.Bytes()))
		assert.Empty(t, rec.Header().Get("X-Logo-Error"))
	})

	t.Run("field warnings", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, composeRequest(t, map[string]string{
			"content_type": "vcard",
			"first_name":   "Ada",
			"email":        "nope",
		}, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "email", rec.Header().Get("X-Field-Warnings"))
	})

	errorCases := []struct {
		name   string
		fields map[string]string
		logo   *upload
		status int
		code   string
	}{
		{
			name:   "nothing to encode",
			fields: map[string]string{"content_type": "sms"},
			status: http.StatusBadRequest,
			code:   web.CodeMissingText,
		},
		{
			name:   "unknown content type",
			fields: map[string]string{"content_type": "fax", "text": "x"},
			status: http.StatusBadRequest,
			code:   web.CodeValidation,
		},
		{
			name:   "unknown format",
			fields: map[string]string{"content_type": "url", "text": "https://example.com", "format": "gif"},
			status: http.StatusBadRequest,
			code:   web.CodeValidation,
		},
		{
			name:   "unsupported logo",
			fields: map[string]string{"text": "hello"},
			logo:   &upload{name: "logo.gif", data: []byte("GIF89a not really")},
			status: http.StatusUnsupportedMediaType,
			code:   web.CodeUnsupportedLogo,
		},
		{
			name:   "logo too large",
			fields: map[string]string{"text": "hello"},
			logo:   &upload{name: "logo.png", data: make([]byte, 65<<10)},
			status: http.StatusRequestEntityTooLarge,
			code:   web.CodeLogoTooLarge,
		},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, composeRequest(t, tt.fields, tt.logo))

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
		})
	}
}
