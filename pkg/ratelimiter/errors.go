package ratelimiter

import "errors"

var (
	// ErrInvalidConfig reports a bucket that cannot hold or refill tokens,
	// or a limiter built without a store.
	ErrInvalidConfig = errors.New("ratelimiter: invalid bucket configuration")

	// ErrInvalidTokenCount reports a cost outside 1..Capacity.
	ErrInvalidTokenCount = errors.New("ratelimiter: token count out of range")

	// ErrCanceled is joined with ctx.Err() when a caller gave up before the
	// store answered.
	ErrCanceled = errors.New("ratelimiter: request canceled")

	// ErrStoreUnavailable means the counter backend did not answer. The
	// download middleware decides whether to fail open on it.
	ErrStoreUnavailable = errors.New("ratelimiter: counter store unavailable")
)
