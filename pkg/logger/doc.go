// Package logger builds the service's *slog.Logger and keeps attribute
// names consistent across packages.
//
// New takes functional options. WithEnvironment selects per-environment
// defaults: text at debug level in development, JSON at info level in
// staging and production. Context extractors add request-scoped values,
// such as the request id, to every record logged with a *Context method.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "apkdrop"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "package served",
//		logger.Variant(id),
//		logger.Device(profile),
//		logger.Bytes(n),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
