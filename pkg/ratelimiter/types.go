package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Bucket capacity
	Remaining int       // Tokens left; negative when the request was denied
	ResetAt   time.Time // When the next token arrives, or when enough tokens will have arrived after a denial
}

// Allowed returns whether the request is allowed based on remaining tokens.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying. Zero if allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Config defines the token bucket. Defaults allow a burst of 10 downloads
// per client and one more every 30 seconds.
type Config struct {
	Capacity       int           `env:"DOWNLOAD_RATE_CAPACITY" envDefault:"10"`
	RefillRate     int           `env:"DOWNLOAD_RATE_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"DOWNLOAD_RATE_INTERVAL" envDefault:"30s"`
}
