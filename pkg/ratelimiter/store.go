package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens takes tokens from the bucket at key when enough are
	// available. Remaining is negative (and nothing is taken) otherwise.
	// Consuming zero tokens reports the current state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the bucket at key.
	Reset(ctx context.Context, key string) error
}
