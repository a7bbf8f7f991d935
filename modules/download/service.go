package download

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apkdrop/handler"
	"github.com/dmitrymomot/apkdrop/pkg/apkstore"
	"github.com/dmitrymomot/apkdrop/pkg/binder"
	"github.com/dmitrymomot/apkdrop/pkg/cache"
	"github.com/dmitrymomot/apkdrop/pkg/device"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
	"github.com/dmitrymomot/apkdrop/pkg/ratelimiter"
	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

// Service serves variant selection, package downloads and share links.
type Service struct {
	cfg          Config
	catalog      *variant.Catalog
	known        map[string]struct{}
	store        apkstore.Storage
	limiter      ratelimiter.RateLimiter
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	qrCodes      *cache.LRU[qrKey, []byte]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRateLimiter guards package downloads with limiter.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// NewService returns a Service serving files of catalog from store.
// A nil catalog uses variant.Default.
func NewService(cfg Config, catalog *variant.Catalog, store apkstore.Storage, opts ...Option) *Service {
	if catalog == nil {
		catalog = variant.Default()
	}
	s := &Service{
		cfg:     cfg.withDefaults(),
		catalog: catalog,
		store:   store,
		log:     logger.Discard(),
		qrCodes: cache.NewLRU[qrKey, []byte](qrCacheEntries),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.known = make(map[string]struct{})
	for _, id := range catalog.Identifiers() {
		s.known[id] = struct{}{}
	}
	s.log = s.log.With(logger.Component("download"))
	s.errorHandler = handler.NewErrorHandler(s.log)
	return s
}

// Handle returns the module router. Every route sees the device profile
// of the caller through device.Middleware.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(device.Middleware)

	r.Get("/download", wrap(s, s.redirect))

	r.Route("/api", func(r chi.Router) {
		r.Get("/device", wrap(s, s.deviceInfo))
		r.Get("/variant", wrap(s, s.selectVariant))
		r.Get("/variants", wrap(s, s.listVariants))
		r.Get("/share", wrap(s, s.shareLinks, binder.Query()))
		r.Get("/share/qr.png", wrap(s, s.shareQRCode, binder.Query()))
	})

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.rateLimit())
		}
		r.Get("/apks/{name}", wrap(s, s.serveFile, binder.Path(chi.URLParam)))
		r.Head("/apks/{name}", wrap(s, s.serveFile, binder.Path(chi.URLParam)))
	})

	r.NotFound(wrap(s, func(handler.Context, struct{}) handler.Response {
		return handler.JSONError(handler.ErrNotFound)
	}))
	r.MethodNotAllowed(wrap(s, func(handler.Context, struct{}) handler.Response {
		return handler.JSONError(handler.ErrMethodNotAllowed)
	}))

	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
	)
}

func (s *Service) rateLimit() func(http.Handler) http.Handler {
	opts := []ratelimiter.MiddlewareOption{
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, res *ratelimiter.Result) {
			s.log.WarnContext(r.Context(), "download rate limited",
				slog.Int("limit", res.Limit),
				slog.Duration("retry_after", res.RetryAfter()),
			)
			_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
		}),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			s.errorHandler(handler.NewContext(w, r), err)
		}),
	}
	if s.cfg.RateLimitFailOpen {
		opts = append(opts, ratelimiter.WithFailOpen(func(r *http.Request, err error) {
			s.log.WarnContext(r.Context(), "rate limiter unavailable, serving anyway", logger.Error(err))
		}))
	}
	return ratelimiter.Middleware(s.limiter, opts...)
}
