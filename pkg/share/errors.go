package share

import "errors"

var (
	// ErrEmptyURL is returned when no page URL is given.
	ErrEmptyURL = errors.New("share url cannot be empty")
	// ErrInvalidURL is returned when the page URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("share url must be an absolute http or https url")
	// ErrEmptyContent is returned when QR content is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the QR encoder fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)
