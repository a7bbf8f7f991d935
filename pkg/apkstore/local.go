package apkstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LocalStorage serves package files from a single directory.
// All lookups are confined to baseDir. Safe for concurrent use.
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates a storage rooted at baseDir, creating the directory
// if it does not exist. baseURL prefixes public URLs (e.g. "/apks/").
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &LocalStorage{baseDir: absBaseDir, baseURL: baseURL}, nil
}

// Open returns the named file. The returned reader is an *os.File and so
// supports seeking.
func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, Object{}, err
	}

	absPath, err := s.resolvePath(name)
	if err != nil {
		return nil, Object{}, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Object{}, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return nil, Object{}, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, Object{}, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, Object{}, fmt.Errorf("%w: %s", ErrIsDirectory, name)
	}

	return f, objectFromInfo(info), nil
}

// Stat returns metadata for the named file.
func (s *LocalStorage) Stat(ctx context.Context, name string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	absPath, err := s.resolvePath(name)
	if err != nil {
		return Object{}, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Object{}, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return Object{}, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return Object{}, fmt.Errorf("%w: %s", ErrIsDirectory, name)
	}

	return objectFromInfo(info), nil
}

// List returns the regular files in the base directory sorted by name.
// Subdirectories are not descended into.
func (s *LocalStorage) List(ctx context.Context) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // removed between ReadDir and Info
		}
		objects = append(objects, objectFromInfo(info))
	}

	slices.SortFunc(objects, func(a, b Object) int { return strings.Compare(a.Name, b.Name) })
	return objects, nil
}

// URL returns the public URL for a file.
func (s *LocalStorage) URL(name string) string {
	return s.baseURL + strings.TrimPrefix(name, "/")
}

// resolvePath validates name and resolves it inside baseDir.
func (s *LocalStorage) resolvePath(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(name)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return absPath, nil
}

func objectFromInfo(info fs.FileInfo) Object {
	return Object{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
