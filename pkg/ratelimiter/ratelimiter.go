package ratelimiter

import (
	"context"
	"fmt"
)

// RateLimiter checks and consumes request budget for a key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Limiter is a token bucket limiter over a Store.
type Limiter struct {
	store  Store
	config Config
}

// New creates a token bucket limiter.
func New(store Store, config Config) (*Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, config: config}, nil
}

// Config returns the bucket configuration.
func (l *Limiter) Config() Config { return l.config }

// Allow consumes one token for key.
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	return l.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (l *Limiter) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if n > l.config.Capacity {
		return nil, fmt.Errorf("%w: %d exceeds capacity %d", ErrInvalidTokenCount, n, l.config.Capacity)
	}
	return l.consume(ctx, key, n)
}

// Status reports the bucket for key without consuming.
func (l *Limiter) Status(ctx context.Context, key string) (*Result, error) {
	return l.consume(ctx, key, 0)
}

// Reset clears the bucket for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *Limiter) consume(ctx context.Context, key string, n int) (*Result, error) {
	remaining, reset, err := l.store.ConsumeTokens(ctx, key, n, l.config)
	if err != nil {
		return nil, err
	}
	return &Result{
		Limit:     l.config.Capacity,
		Remaining: remaining,
		ResetAt:   reset,
	}, nil
}

// Validate checks that every bucket parameter is positive.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
