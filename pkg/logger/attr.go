package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/apkdrop/pkg/device"
)

// Error records err under "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// ClientIP records the resolved client address.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// Duration records an elapsed time in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d)/float64(time.Millisecond))
}

// Component records the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Variant records a package identifier.
func Variant(id string) slog.Attr {
	return slog.String("variant", id)
}

// Bytes records a transferred byte count.
func Bytes(n int64) slog.Attr {
	return slog.Int64("bytes", n)
}

// Device records the selection-relevant part of a device profile.
func Device(p device.Profile) slog.Attr {
	return slog.Group("device",
		slog.String("os", string(p.OS)),
		slog.String("arch", string(p.Architecture)),
		slog.String("density", string(p.Density)),
		slog.String("lang", p.Language),
		slog.Bool("bot", p.IsBot),
	)
}
