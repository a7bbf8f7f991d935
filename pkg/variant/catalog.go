package variant

import (
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/apkdrop/pkg/device"
)

// Universal is the package that runs on any Android device. It is always a
// valid answer, whatever the catalog contains.
const Universal = "universal.apk"

// DefaultSize is reported for identifiers missing from the size table.
const DefaultSize int64 = 5_000_000

// Identifier decoration used for split variants: base-{token}.apk.
const (
	prefix = "base-"
	suffix = ".apk"
)

var architectureLabels = map[device.Architecture]string{
	device.ArchARM64:  "ARM64 (64-bit)",
	device.ArchARMv7:  "ARM (32-bit)",
	device.ArchX86:    "Intel x86 (32-bit)",
	device.ArchX86_64: "Intel x86 (64-bit)",
}

var densityLabels = map[device.Density]string{
	device.DensityLDPI:    "Low Density",
	device.DensityMDPI:    "Medium Density",
	device.DensityHDPI:    "High Density",
	device.DensityXHDPI:   "Extra High Density",
	device.DensityXXHDPI:  "Extra Extra High Density",
	device.DensityXXXHDPI: "Extra Extra Extra High Density",
	device.DensityTVDPI:   "TV Density",
}

var defaultLanguageLabels = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
}

var defaultFileSizes = map[string]int64{
	Universal:              52451179,
	"base-arm64_v8a.apk":   4080322,
	"base-armeabi_v7a.apk": 3293900,
	"base-x86.apk":         4309668,
	"base-x86_64.apk":      4190899,
	"base-en.apk":          98650,
}

// Catalog is the static table of known variants: labels for every selectable
// token and the byte size of every known file. A Catalog never changes after
// construction and is safe for concurrent use.
type Catalog struct {
	languages map[string]string
	sizes     map[string]int64
}

// Option configures a Catalog under construction.
type Option func(*Catalog)

// WithLanguages adds or replaces language labels. Keys are lower-cased
// two-letter codes; empty keys or labels are ignored.
func WithLanguages(labels map[string]string) Option {
	return func(c *Catalog) {
		for code, label := range labels {
			code = normalizeLanguage(code)
			if code == "" || label == "" {
				continue
			}
			c.languages[code] = label
		}
	}
}

// WithSizes adds or replaces file sizes. Non-positive sizes are ignored.
func WithSizes(sizes map[string]int64) Option {
	return func(c *Catalog) {
		for id, size := range sizes {
			if id == "" || size <= 0 {
				continue
			}
			c.sizes[id] = size
		}
	}
}

// New builds a catalog from the built-in tables plus the given options.
// Input maps are copied; later changes to them do not affect the catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		languages: maps.Clone(defaultLanguageLabels),
		sizes:     maps.Clone(defaultFileSizes),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the process-wide built-in catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = New()
	})
	return defaultCatalog
}

// ArchitectureLabel returns the label for a supported ABI.
func (c *Catalog) ArchitectureLabel(a device.Architecture) (string, bool) {
	label, ok := architectureLabels[a]
	return label, ok
}

// DensityLabel returns the label for a density bucket.
func (c *Catalog) DensityLabel(d device.Density) (string, bool) {
	label, ok := densityLabels[d]
	return label, ok
}

// LanguageLabel returns the label for a language code.
func (c *Catalog) LanguageLabel(code string) (string, bool) {
	label, ok := c.languages[code]
	return label, ok
}

// Languages returns a copy of the language label table.
func (c *Catalog) Languages() map[string]string {
	return maps.Clone(c.languages)
}

// Sizes returns a copy of the file size table.
func (c *Catalog) Sizes() map[string]int64 {
	return maps.Clone(c.sizes)
}

// Identifiers lists every identifier Select can produce for this catalog,
// sorted, with Universal first.
func (c *Catalog) Identifiers() []string {
	ids := make([]string, 0, len(architectureLabels)+len(densityLabels)+len(c.languages))
	for a := range architectureLabels {
		ids = append(ids, prefix+string(a)+suffix)
	}
	for d := range densityLabels {
		ids = append(ids, prefix+string(d)+suffix)
	}
	for lang := range c.languages {
		ids = append(ids, prefix+lang+suffix)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	return append([]string{Universal}, ids...)
}
