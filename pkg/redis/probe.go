package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Probe returns a readiness check for the shared rate limit store. The
// check fails with ErrPingFailed while client cannot reach the server.
func Probe(client redis.Cmdable) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrPingFailed, err)
		}
		return nil
	}
}
