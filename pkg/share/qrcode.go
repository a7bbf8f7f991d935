package share

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// QR code size bounds in pixels.
const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// QRCode renders content as a PNG QR code. Sizes outside the allowed range
// are clamped; zero or negative selects DefaultQRSize.
func QRCode(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, ClampQRSize(size))
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// QRCodeDataURI renders content as a base64 PNG data URI for <img src>.
func QRCodeDataURI(content string, size int) (string, error) {
	png, err := QRCode(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// ClampQRSize maps a requested size into [MinQRSize, MaxQRSize].
func ClampQRSize(size int) int {
	if size <= 0 {
		return DefaultQRSize
	}
	return min(max(size, MinQRSize), MaxQRSize)
}
