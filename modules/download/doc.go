// Package download is the HTTP surface of apkdrop. It profiles each
// caller, picks the matching package from the variant catalog and either
// describes it (JSON API), redirects to it (/download) or streams it from
// package storage (/apks/{name}) behind a per-client rate limit. Share
// links and QR codes point people at /download.
//
//	svc := download.NewService(cfg, catalog, store,
//		download.WithLogger(log),
//		download.WithRateLimiter(limiter),
//	)
//	r.Mount("/", svc.Handle())
package download
