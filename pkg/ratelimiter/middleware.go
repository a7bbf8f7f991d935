package ratelimiter

import (
	"hash/fnv"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/apkdrop/pkg/clientip"
)

// maxKeyLength bounds storage key length; longer keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the IP resolved by clientip.Middleware, or by
// the TCP peer address when the middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Composite combines multiple key functions into one.
// Keys longer than 64 characters are hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			_, _ = h.Write([]byte(combined))
			return strconv.FormatUint(h.Sum64(), 36)
		}
		return combined
	}
}

// DeniedHandler writes the response for a rejected request.
type DeniedHandler func(w http.ResponseWriter, r *http.Request, result *Result)

// ErrorHandler writes the response when the store fails.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareOptions struct {
	keyFunc  KeyFunc
	denied   DeniedHandler
	onError  ErrorHandler
	failOpen func(r *http.Request, err error)
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

// WithKeyFunc sets the key extractor. Defaults to ByClientIP.
func WithKeyFunc(fn KeyFunc) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.keyFunc = fn
		}
	}
}

// WithDeniedHandler sets the response for rejected requests.
func WithDeniedHandler(fn DeniedHandler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.denied = fn
		}
	}
}

// WithErrorHandler sets the response for store failures.
func WithErrorHandler(fn ErrorHandler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// WithFailOpen lets requests through when the store fails. report
// receives the error, typically to log it.
func WithFailOpen(report func(r *http.Request, err error)) MiddlewareOption {
	return func(o *middlewareOptions) {
		o.failOpen = report
	}
}

// Middleware rejects requests once the key's bucket is empty and sets the
// X-RateLimit-* headers on every response it lets through or denies.
func Middleware(limiter RateLimiter, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := &middlewareOptions{
		keyFunc: ByClientIP,
		denied: func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), o.keyFunc(r))
			if err != nil {
				if o.failOpen != nil {
					o.failOpen(r, err)
					next.ServeHTTP(w, r)
					return
				}
				o.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				// round up so clients never retry early
				retryAfter := int(math.Ceil(result.RetryAfter().Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				o.denied(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
