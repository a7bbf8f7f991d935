// Command apkdrop serves Android packages, picking the split APK that
// matches each visitor's device.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/apkdrop/modules/download"
	"github.com/dmitrymomot/apkdrop/pkg/apkstore"
	"github.com/dmitrymomot/apkdrop/pkg/clientip"
	"github.com/dmitrymomot/apkdrop/pkg/config"
	"github.com/dmitrymomot/apkdrop/pkg/environment"
	"github.com/dmitrymomot/apkdrop/pkg/httpserver"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
	"github.com/dmitrymomot/apkdrop/pkg/ratelimiter"
	"github.com/dmitrymomot/apkdrop/pkg/redis"
	"github.com/dmitrymomot/apkdrop/pkg/requestid"
	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "apkdrop:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app      appConfig
		httpCfg  httpserver.Config
		storeCfg apkstore.Config
		redisCfg redis.Config
		rateCfg  ratelimiter.Config
		dlCfg    download.Config
	)
	if err := errors.Join(
		config.Load(&app),
		config.Load(&httpCfg),
		config.Load(&storeCfg),
		config.Load(&redisCfg),
		config.Load(&rateCfg),
		config.Load(&dlCfg),
	); err != nil {
		return err
	}

	env := environment.Parse(app.Env)
	log := logger.New(
		logger.WithEnvironment(env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	catalog := variant.Default()
	if app.CatalogFile != "" {
		loaded, err := variant.LoadFile(app.CatalogFile)
		if err != nil {
			return err
		}
		catalog = loaded
		log.Info("catalog loaded", slog.String("file", app.CatalogFile), slog.Int("variants", len(catalog.Identifiers())))
	}

	store, err := apkstore.New(ctx, storeCfg)
	if err != nil {
		return err
	}
	go auditStore(ctx, log, app, store, catalog)

	checks := []httpserver.Check{{
		Name: "storage",
		Probe: func(ctx context.Context) error {
			_, err := store.Stat(ctx, variant.Universal)
			return err
		},
	}}

	var limiterStore ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		limiterStore = ratelimiter.NewRedisStore(client)
		checks = append(checks, httpserver.Check{Name: "redis", Probe: redis.Probe(client)})
		log.Info("rate limiter using redis")
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		limiterStore = mem
		log.Info("rate limiter using process memory")
	}

	limiter, err := ratelimiter.New(limiterStore, rateCfg)
	if err != nil {
		return err
	}

	svc := download.NewService(dlCfg, catalog, store,
		download.WithLogger(log),
		download.WithRateLimiter(limiter),
	)

	router := newRouter(routerDeps{
		log:              log,
		env:              env,
		resolver:         clientip.New(proxyHeaders(app.TrustProxyHeaders)...),
		app:              svc.Handle(),
		readinessTimeout: app.ReadinessTimeout,
		checks:           checks,
	})

	return httpserver.New(httpCfg, httpserver.WithLogger(log)).Run(ctx, router)
}

// auditStore compares the catalog with the stored files and logs the
// result. Serving does not wait for it.
func auditStore(ctx context.Context, log *slog.Logger, app appConfig, store apkstore.Storage, catalog *variant.Catalog) {
	if app.AuditTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.AuditTimeout)
		defer cancel()
	}

	report, err := apkstore.Audit(ctx, store, catalog)
	switch {
	case err != nil:
		log.WarnContext(ctx, "package audit failed", logger.Error(err))
	case !report.OK():
		log.WarnContext(ctx, "package audit found problems", slog.Any("report", report))
	default:
		log.InfoContext(ctx, "package audit passed", slog.Any("report", report))
	}
}
