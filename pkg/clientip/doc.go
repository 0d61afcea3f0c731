// Package clientip resolves the visitor's IP address behind proxies.
//
// GetIP checks the proxy headers in DefaultHeaders order (the first valid
// address wins; X-Forwarded-For is scanned left to right) and falls back to
// RemoteAddr. Middleware stores the result in the request context so the
// rate limiter and logs agree on one value:
//
//	r.Use(clientip.Middleware)
//	limiter := ratelimiter.Middleware(bucket, clientip.FromRequest)
package clientip
