// Package apkstore provides read-only storage backends for Android package
// files, addressed by bare identifiers such as "base-arm64_v8a.apk".
//
// Two implementations of Storage are provided:
//   - LocalStorage serves files from a single directory. Names with path
//     separators or ".." are rejected before touching the filesystem.
//   - S3Storage serves objects from an S3 bucket or an S3-compatible service
//     (MinIO, Wasabi) with optional key prefix and path-style addressing.
//
// New picks the backend from Config, which is loaded from the environment:
//
//	var cfg apkstore.Config
//	config.MustLoad(&cfg)
//	store, err := apkstore.New(ctx, cfg)
//
// # Audit
//
// The selector assumes that every identifier it can produce exists. Audit
// checks that assumption against a real store and returns a Report listing
// missing identifiers, size mismatches with the catalog and unreferenced
// files. It is meant to be logged at startup:
//
//	report, err := apkstore.Audit(ctx, store, variant.Default())
//	log.InfoContext(ctx, "package audit", slog.Any("report", report))
//
// # Errors
//
// Backend failures are classified into the sentinel errors in errors.go;
// use errors.Is with ErrFileNotFound or ErrInvalidName to map them to HTTP
// statuses.
package apkstore
