package variant

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/apkdrop/pkg/device"
)

// Choice is the selected variant together with its display metadata.
type Choice struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	HumanSize string `json:"humanSize"`
}

// Select picks the package for a device profile. Rules are evaluated in
// order and the first satisfied one wins:
//
//  1. non-Android devices get Universal;
//  2. a supported architecture gets base-{architecture}.apk;
//  3. a supported density gets base-{density}.apk;
//  4. a catalogued language gets base-{language}.apk;
//  5. anything else gets Universal.
//
// Detect always fills Density, so rules 4 and 5 are not reached with
// profiles coming from the profiler. They stay as the fallback for profiles
// built elsewhere with no density.
func (c *Catalog) Select(p device.Profile) string {
	if p.OS != device.OSAndroid {
		return Universal
	}

	if _, ok := architectureLabels[p.Architecture]; ok {
		return prefix + string(p.Architecture) + suffix
	}

	if _, ok := densityLabels[p.Density]; ok {
		return prefix + string(p.Density) + suffix
	}

	if _, ok := c.languages[p.Language]; ok {
		return prefix + p.Language + suffix
	}

	return Universal
}

// ReadableName returns a human label for a package identifier. It never
// fails: unrecognized tokens come back upper-cased.
func (c *Catalog) ReadableName(id string) string {
	if id == Universal {
		return "Universal APK"
	}

	token := strings.Replace(id, prefix, "", 1)
	token = strings.Replace(token, suffix, "", 1)

	if label, ok := architectureLabels[device.Architecture(token)]; ok {
		return label
	}
	if label, ok := densityLabels[device.Density(token)]; ok {
		return label
	}
	if label, ok := c.languages[token]; ok {
		return label + " Version"
	}

	// Casers keep state, so one is built per call.
	return cases.Upper(language.Und).String(token)
}

// SizeOf returns the byte size recorded for the exact identifier, or
// DefaultSize when the identifier is unknown.
func (c *Catalog) SizeOf(id string) int64 {
	if size, ok := c.sizes[id]; ok {
		return size
	}
	return DefaultSize
}

// Choose runs Select and resolves the display metadata for the result.
func (c *Catalog) Choose(p device.Profile) Choice {
	return c.Describe(c.Select(p))
}

// Describe resolves the display metadata for an identifier.
func (c *Catalog) Describe(id string) Choice {
	size := c.SizeOf(id)
	return Choice{
		ID:        id,
		Name:      c.ReadableName(id),
		Size:      size,
		HumanSize: FormatSize(size),
	}
}

// Select picks a package using the default catalog.
func Select(p device.Profile) string { return Default().Select(p) }

// ReadableName resolves a label using the default catalog.
func ReadableName(id string) string { return Default().ReadableName(id) }

// SizeOf resolves a size using the default catalog.
func SizeOf(id string) int64 { return Default().SizeOf(id) }

// FormatSize renders a byte count as "52.5 MB", "96.3 KB" or "512 bytes".
func FormatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

func normalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
