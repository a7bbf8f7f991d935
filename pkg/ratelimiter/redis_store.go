package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces bucket keys.
const DefaultRedisPrefix = "apkdrop:ratelimit:"

// consumeScript runs the refill-then-consume step atomically. It mirrors
// refill and MemoryStore.ConsumeTokens; times are unix milliseconds.
var consumeScript = redis.NewScript(`
local capacity  = tonumber(ARGV[1])
local rate      = tonumber(ARGV[2])
local interval  = tonumber(ARGV[3])
local now       = tonumber(ARGV[4])
local requested = tonumber(ARGV[5])
local ttl       = tonumber(ARGV[6])

local state  = redis.call('HMGET', KEYS[1], 'tokens', 'last')
local tokens = tonumber(state[1])
local last   = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now
end

if tokens >= capacity then
  tokens = capacity
  last = now
elseif now - last >= interval then
  local intervals = math.floor((now - last) / interval)
  local limit = math.floor(capacity / rate) + 1
  if intervals > limit then
    intervals = limit
  end
  tokens = math.min(tokens + intervals * rate, capacity)
  last = last + intervals * interval
end

local remaining = tokens - requested
if remaining >= 0 then
  tokens = remaining
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'last', last)
redis.call('PEXPIRE', KEYS[1], ttl)
return {remaining, last}
`)

// RedisStore keeps buckets in Redis so several instances share one limit.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisPrefix sets the key prefix.
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithRedisClock overrides the time source used for refill arithmetic.
func WithRedisClock(now func() time.Time) RedisStoreOption {
	return func(s *RedisStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client redis.Cmdable, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: DefaultRedisPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConsumeTokens takes tokens from the bucket for key.
func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, errors.Join(ErrCanceled, err)
	}

	interval := max(config.RefillInterval.Milliseconds(), 1)
	res, err := consumeScript.Run(ctx, s.client, []string{s.prefix + key},
		config.Capacity,
		config.RefillRate,
		interval,
		s.now().UnixMilli(),
		tokens,
		max(ttl(config).Milliseconds(), 1000),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("%w: unexpected script reply %v", ErrStoreUnavailable, res)
	}

	remaining := int(res[0])
	last := time.UnixMilli(res[1])
	return remaining, resetAt(remaining, last, config), nil
}

// Reset clears the bucket for key.
func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
