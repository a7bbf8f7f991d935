package variant

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog override:
//
//	languages:
//	  uk: Ukrainian
//	sizes:
//	  universal.apk: 52451179
//	  base-uk.apk: 101234
type catalogFile struct {
	Languages map[string]string `yaml:"languages"`
	Sizes     map[string]int64  `yaml:"sizes"`
}

// Load reads a YAML catalog override and merges it over the built-in tables.
// Architecture and density labels are fixed and cannot be overridden.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	for code, label := range f.Languages {
		if normalizeLanguage(code) == "" || strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("%w: empty language code or label for %q", ErrInvalidCatalog, code)
		}
	}
	for id, size := range f.Sizes {
		if !strings.HasSuffix(id, suffix) {
			return nil, fmt.Errorf("%w: identifier %q must end with %s", ErrInvalidCatalog, id, suffix)
		}
		if size <= 0 {
			return nil, fmt.Errorf("%w: size of %q must be positive, got %d", ErrInvalidCatalog, id, size)
		}
	}

	return New(WithLanguages(f.Languages), WithSizes(f.Sizes)), nil
}

// LoadFile is Load for a file path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrCatalogNotFound, err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
