// Package httpserver runs the HTTP listener with configured timeouts and
// graceful shutdown, and provides liveness and readiness handlers.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, 2*time.Second,
//		httpserver.Check{Name: "redis", Probe: redis.Probe(client)}))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns errors wrapping ErrStart; Shutdown wraps ErrShutdown.
package httpserver
