// Package ratelimiter provides a token bucket rate limiter with in-memory
// and Redis storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token. A request that finds too few
// tokens is denied and takes nothing.
//
// # Basic Usage
//
//	cfg := ratelimiter.Config{Capacity: 10, RefillRate: 1, RefillInterval: 30 * time.Second}
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.New(store, cfg)
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, clientIP)
//	if err == nil && !result.Allowed() {
//		// retry after result.RetryAfter()
//	}
//
// # Shared limits
//
// RedisStore keeps the buckets in Redis and applies each step in a Lua
// script, so any number of instances enforce one limit per key:
//
//	store := ratelimiter.NewRedisStore(redisClient)
//
// # HTTP Middleware
//
//	r.With(ratelimiter.Middleware(limiter,
//		ratelimiter.WithKeyFunc(ratelimiter.ByClientIP),
//		ratelimiter.WithDeniedHandler(renderTooManyRequests),
//	)).Get("/apks/{name}", serve)
//
// Responses carry X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset. Denied responses also carry Retry-After in whole
// seconds, rounded up.
package ratelimiter
