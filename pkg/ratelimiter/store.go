package ratelimiter

import (
	"context"
	"time"
)

// Store holds bucket state. Implementations must apply refill and consume
// atomically per key.
type Store interface {
	// ConsumeTokens takes tokens from the bucket for key. A negative
	// remaining count means the request is denied and nothing was taken.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the bucket for key.
	Reset(ctx context.Context, key string) error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)
