package apkstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// ContentType is the media type package files are served with.
const ContentType = "application/vnd.android.package-archive"

// Object describes a stored package file.
type Object struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime,omitzero"`
	ETag    string    `json:"etag,omitempty"`
}

// Storage is a flat, read-only collection of package files addressed by
// their identifier (e.g. "base-arm64_v8a.apk").
type Storage interface {
	// Open returns a reader for the named file. The caller closes it.
	// The reader also implements io.ReadSeeker when the backend supports it.
	Open(ctx context.Context, name string) (io.ReadCloser, Object, error)
	// Stat returns metadata for the named file.
	Stat(ctx context.Context, name string) (Object, error)
	// List returns every file in the collection.
	List(ctx context.Context) ([]Object, error)
	// URL returns the public URL for a file.
	URL(name string) string
}

// Storage drivers accepted by Config.Driver.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures a storage backend.
type Config struct {
	Driver  string `env:"APK_STORAGE" envDefault:"local"`
	Dir     string `env:"APK_DIR" envDefault:"./apks"`
	BaseURL string `env:"APK_BASE_URL" envDefault:"/apks/"`

	S3 S3Config
}

// New builds the backend named by cfg.Driver. S3 options are ignored by the
// local driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverLocal, "":
		return NewLocalStorage(cfg.Dir, cfg.BaseURL)
	case DriverS3:
		s3cfg := cfg.S3
		if s3cfg.BaseURL == "" {
			s3cfg.BaseURL = cfg.BaseURL
		}
		return NewS3Storage(ctx, s3cfg, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// ValidName reports whether name is a bare package file name: non-empty,
// with no path separators and no "..".
func ValidName(name string) bool {
	if name == "" || name == "." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return !strings.ContainsRune(name, 0)
}

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
