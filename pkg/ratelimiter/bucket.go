package ratelimiter

import "time"

// refill adds the tokens accrued between last and now. A full bucket
// restarts its clock at now so idle time does not bank extra tokens.
func refill(tokens int, last, now time.Time, cfg Config) (int, time.Time) {
	if tokens >= cfg.Capacity {
		return cfg.Capacity, now
	}

	elapsed := now.Sub(last)
	if elapsed < cfg.RefillInterval {
		return tokens, last
	}

	// capped to avoid overflow on long idle keys
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := min(int64(elapsed/cfg.RefillInterval), maxIntervals)

	tokens = min(tokens+int(intervals)*cfg.RefillRate, cfg.Capacity)
	return tokens, last.Add(time.Duration(intervals) * cfg.RefillInterval)
}

// resetAt returns when the next token arrives, or, for a denied request,
// when enough tokens will have accrued to cover the deficit.
func resetAt(remaining int, last time.Time, cfg Config) time.Time {
	if remaining >= 0 {
		return last.Add(cfg.RefillInterval)
	}
	deficit := -remaining
	intervals := (deficit + cfg.RefillRate - 1) / cfg.RefillRate
	return last.Add(time.Duration(intervals) * cfg.RefillInterval)
}

// ttl is how long an untouched bucket takes to refill completely, plus one
// interval of slack.
func ttl(cfg Config) time.Duration {
	return time.Duration(cfg.Capacity/cfg.RefillRate+2) * cfg.RefillInterval
}
