package variant

import "errors"

var (
	// ErrInvalidCatalog is returned when a catalog file cannot be parsed or holds invalid entries.
	ErrInvalidCatalog = errors.New("invalid variant catalog")

	// ErrCatalogNotFound is returned when the catalog file cannot be opened.
	ErrCatalogNotFound = errors.New("variant catalog file not found")
)
