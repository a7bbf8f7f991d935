package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/apkdrop/pkg/clientip"
	"github.com/dmitrymomot/apkdrop/pkg/environment"
	"github.com/dmitrymomot/apkdrop/pkg/httpserver"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
	"github.com/dmitrymomot/apkdrop/pkg/requestid"
)

type routerDeps struct {
	log              *slog.Logger
	env              environment.Environment
	resolver         *clientip.Resolver
	app              http.Handler
	readinessTimeout time.Duration
	checks           []httpserver.Check
}

func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		d.resolver.Middleware,
		environment.Middleware(d.env),
		accessLog(d.log),
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.readinessTimeout, d.checks...))
	r.Mount("/", d.app)
	return r
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			switch {
			case strings.HasPrefix(r.URL.Path, "/health/"):
				level = slog.LevelDebug
			case ww.Status() >= http.StatusInternalServerError:
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Bytes(int64(ww.BytesWritten())),
				logger.Duration(time.Since(start)),
				logger.ClientIP(clientip.FromContext(r.Context())),
			)
		})
	}
}

func proxyHeaders(configured []string) []clientip.Option {
	switch {
	case configured == nil:
		return nil
	case len(configured) == 1 && strings.EqualFold(strings.TrimSpace(configured[0]), "none"):
		return []clientip.Option{clientip.WithTrustedHeaders()}
	default:
		headers := make([]string, 0, len(configured))
		for _, h := range configured {
			if h = strings.TrimSpace(h); h != "" {
				headers = append(headers, h)
			}
		}
		return []clientip.Option{clientip.WithTrustedHeaders(headers...)}
	}
}
