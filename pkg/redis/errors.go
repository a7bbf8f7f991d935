package redis

import "errors"

var (
	// ErrNotConfigured is returned by Connect when REDIS_URL is empty.
	ErrNotConfigured = errors.New("redis: REDIS_URL is not set")
	// ErrInvalidURL wraps a REDIS_URL go-redis could not parse.
	ErrInvalidURL = errors.New("redis: invalid REDIS_URL")
	// ErrNotReady means no ping succeeded within the connect budget.
	ErrNotReady = errors.New("redis: server not reachable")
	// ErrPingFailed is reported by the readiness probe.
	ErrPingFailed = errors.New("redis: ping failed")
)
