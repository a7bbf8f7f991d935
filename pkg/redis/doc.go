// Package redis connects to an optional Redis server shared by service
// instances. apkdrop uses it to keep download rate limits consistent across
// replicas; without REDIS_URL the service runs with in-memory limits.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//		readiness = append(readiness, redis.Probe(client))
//	}
//
// Errors wrap the go-redis cause with errors.Join so both the sentinel and
// the cause match errors.Is.
package redis
