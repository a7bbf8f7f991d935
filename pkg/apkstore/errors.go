package apkstore

import "errors"

var (
	// Validation errors
	ErrInvalidName   = errors.New("invalid package name")
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrUnknownDriver = errors.New("unknown storage driver")

	// Lookup errors
	ErrFileNotFound = errors.New("package file not found")
	ErrIsDirectory  = errors.New("path is a directory")

	// I/O errors
	ErrFailedToOpenFile        = errors.New("failed to open package file")
	ErrFailedToStatPath        = errors.New("failed to stat path")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3 classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	// Context errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
