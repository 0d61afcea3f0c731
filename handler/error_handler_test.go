package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/validator"
)

func newErrorHandler(buf *bytes.Buffer) handler.ErrorHandler[handler.Context] {
	log := slog.New(slog.NewTextHandler(buf, nil))
	return handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return text(fmt.Sprintf("<h1>%d %s</h1>", p.StatusCode, p.Error))
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return text(fmt.Sprintf(`<div class="toast %s">%s</div>`, p.Type, p.Message))
		},
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("error page", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		w := httptest.NewRecorder()
		newErrorHandler(&logs)(handler.NewContext(w, get()), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "<h1>404 not_found</h1>", w.Body.String())
		assert.Contains(t, logs.String(), "level=WARN")
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		w := httptest.NewRecorder()
		newErrorHandler(&logs)(handler.NewContext(w, get()), errors.New("disk on fire"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, logs.String(), "level=ERROR")
		assert.Contains(t, logs.String(), "disk on fire")
	})

	t.Run("datastar toast", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		w := httptest.NewRecorder()
		verr := handler.NewValidationError()
		verr.Add("email", "must be a valid email address")
		newErrorHandler(&logs)(handler.NewContext(w, datastarGet()), verr)

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, body, `class="toast warning"`)
		assert.Contains(t, body, "email: must be a valid email address")
	})

	t.Run("json clients get the envelope", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		req := get()
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		newErrorHandler(&logs)(handler.NewContext(w, req), validator.ValidationErrors{{Field: "ssid", Message: "field is required"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"ssid":["field is required"]`)
	})

	t.Run("no page configured", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})(handler.NewContext(w, get()), handler.ErrTooManyRequests)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "too_many_requests")
	})
}
