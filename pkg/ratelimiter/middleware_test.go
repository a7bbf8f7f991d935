package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/clientip"
	"github.com/dmitrymomot/apkdrop/pkg/ratelimiter"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func newLimiter(t *testing.T, cfg ratelimiter.Config) *ratelimiter.Limiter {
	t.Helper()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	limiter, err := ratelimiter.New(store, cfg)
	require.NoError(t, err)
	return limiter
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("allows within capacity then denies", func(t *testing.T) {
		t.Parallel()

		cfg := ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute}
		handler := ratelimiter.Middleware(newLimiter(t, cfg))(okHandler())

		for i := range cfg.Capacity {
			req := httptest.NewRequest(http.MethodGet, "/apks/universal.apk", nil)
			req.RemoteAddr = "192.0.2.10:5555"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(cfg.Capacity-i-1), rec.Header().Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
			assert.Empty(t, rec.Header().Get("Retry-After"))
		}

		req := httptest.NewRequest(http.MethodGet, "/apks/universal.apk", nil)
		req.RemoteAddr = "192.0.2.10:6666"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		require.NoError(t, err)
		assert.InDelta(t, 60, retryAfter, 1)

		// a different client is unaffected
		req = httptest.NewRequest(http.MethodGet, "/apks/universal.apk", nil)
		req.RemoteAddr = "192.0.2.11:5555"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("custom key and denied handler", func(t *testing.T) {
		t.Parallel()

		cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute}
		var denied *ratelimiter.Result
		handler := ratelimiter.Middleware(newLimiter(t, cfg),
			ratelimiter.WithKeyFunc(func(*http.Request) string { return "everyone" }),
			ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result) {
				denied = res
				w.WriteHeader(http.StatusServiceUnavailable)
			}),
		)(okHandler())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, denied)
		assert.False(t, denied.Allowed())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		limiter := failingLimiter{err: ratelimiter.ErrStoreUnavailable}

		rec := httptest.NewRecorder()
		ratelimiter.Middleware(limiter)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var reported error
		rec = httptest.NewRecorder()
		ratelimiter.Middleware(limiter, ratelimiter.WithFailOpen(func(_ *http.Request, err error) {
			reported = err
		}))(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.ErrorIs(t, reported, ratelimiter.ErrStoreUnavailable)
	})
}

func TestByClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	assert.Equal(t, "198.51.100.7", ratelimiter.ByClientIP(req))

	req = req.WithContext(clientip.WithContext(req.Context(), "203.0.113.9"))
	assert.Equal(t, "203.0.113.9", ratelimiter.ByClientIP(req))

	req.RemoteAddr = "pipe"
	req = req.WithContext(context.Background())
	assert.Equal(t, "pipe", ratelimiter.ByClientIP(req))
}

func TestComposite(t *testing.T) {
	t.Parallel()

	static := func(v string) ratelimiter.KeyFunc { return func(*http.Request) string { return v } }
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, "a:b", ratelimiter.Composite(static("a"), static(""), static("b"))(req))
	assert.Empty(t, ratelimiter.Composite(static(""))(req))

	long := ratelimiter.Composite(static(string(make([]byte, 80))))(req)
	assert.LessOrEqual(t, len(long), 13)
}

func TestLimiter(t *testing.T) {
	t.Parallel()

	_, err := ratelimiter.New(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), ratelimiter.Config{})
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	_, err = ratelimiter.New(nil, testConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

	limiter := newLimiter(t, testConfig)
	ctx := context.Background()

	_, err = limiter.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	_, err = limiter.AllowN(ctx, "k", testConfig.Capacity+1)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	status, err := limiter.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Remaining)

	res, err := limiter.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Zero(t, res.RetryAfter())

	res, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Positive(t, res.RetryAfter())

	require.NoError(t, limiter.Reset(ctx, "k"))
	res, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, testConfig, limiter.Config())
}

type failingLimiter struct{ err error }

func (f failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, errors.Join(f.err, errors.New("connection refused"))
}
