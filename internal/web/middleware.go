package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrgen/handler"
	"github.com/dmitrymomot/qrgen/pkg/cookie"
	"github.com/dmitrymomot/qrgen/pkg/logger"
)

// VisitorCookie holds the signed visitor ID.
const VisitorCookie = "qrgen_vid"

var visitorKey = handler.NewContextKey("visitor")

// visitorID returns the ID stored by the visitor middleware.
func visitorID(r *http.Request) string {
	return handler.ContextValue[string](r.Context(), visitorKey)
}

// visitor loads the visitor ID from its cookie, issuing a new one when the
// cookie is missing or fails verification.
func visitor(cookies *cookie.Manager, secure bool, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := cookies.GetSigned(r, VisitorCookie)
			if err == nil {
				if _, perr := uuid.Parse(id); perr != nil {
					err = cookie.ErrInvalidFormat
				}
			}
			if err != nil {
				if !errors.Is(err, cookie.ErrCookieNotFound) {
					log.DebugContext(r.Context(), "visitor cookie rejected", logger.Error(err))
				}
				id = uuid.NewString()
				cookies.SetSigned(w, VisitorCookie, id, cookie.WithSecure(secure))
			}
			ctx := context.WithValue(r.Context(), visitorKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// canonicalHost redirects plain-http requests to https and www hosts to the
// canonical host. Local hosts are left alone.
func canonicalHost(canonical string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := r.Host
			if isLocalHost(host) {
				next.ServeHTTP(w, r)
				return
			}

			target := *r.URL
			target.Host = host
			target.Scheme = "https"

			www := canonical != "" && strings.HasPrefix(host, "www.") && strings.TrimPrefix(host, "www.") == canonical
			if www {
				target.Host = canonical
			}
			// one hop: plain http on a www host lands on https canonical directly
			if !www && r.Header.Get("X-Forwarded-Proto") != "http" {
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, target.String(), http.StatusMovedPermanently)
		})
	}
}

func isLocalHost(host string) bool {
	return host == "" ||
		strings.HasPrefix(host, "localhost") ||
		strings.HasPrefix(host, "127.0.0.1") ||
		strings.HasPrefix(host, "[::1]")
}
