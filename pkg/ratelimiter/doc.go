// Package ratelimiter implements token bucket rate limiting with in-memory
// and Redis stores and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that does not fit
// is denied without taking anything.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     30,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, clientip.GetIP,
//		ratelimiter.WithLimitedHandler(writeRateLimited),
//	)).Get("/api/qr", generate)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every checked response and Retry-After on 429s.
//
// # Stores
//
// MemoryStore keeps buckets in process and drops keys idle for an hour.
// RedisStore keeps them in Redis hashes updated by a Lua script, so several
// instances share one budget:
//
//	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("qrgen:rl:"))
//
// Store failures are wrapped in ErrStoreUnavailable. The middleware answers
// them with 500 unless WithFailOpen is set.
package ratelimiter
