package apkstore

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

// SizeMismatch is a stored file whose size differs from the catalog entry.
type SizeMismatch struct {
	Name    string `json:"name"`
	Catalog int64  `json:"catalog"`
	Stored  int64  `json:"stored"`
}

// Report is the outcome of Audit.
type Report struct {
	// Missing lists identifiers the selector can produce that have no file.
	Missing []string `json:"missing"`
	// Mismatched lists files whose size differs from a recorded catalog size.
	Mismatched []SizeMismatch `json:"mismatched"`
	// Unreferenced lists stored files the selector never produces.
	Unreferenced []string `json:"unreferenced"`
	// UniversalPresent reports whether the universal package is stored.
	UniversalPresent bool `json:"universalPresent"`
}

// OK reports whether every selectable identifier is stored with the
// catalogued size.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("ok", r.OK()),
		slog.Bool("universal_present", r.UniversalPresent),
		slog.Any("missing", r.Missing),
		slog.Int("mismatched", len(r.Mismatched)),
		slog.Int("unreferenced", len(r.Unreferenced)),
	)
}

// Audit compares the stored files with the identifiers the catalog can
// select. It only reports; it never changes what is served.
// A nil catalog audits against variant.Default.
func Audit(ctx context.Context, store Storage, catalog *variant.Catalog) (Report, error) {
	if catalog == nil {
		catalog = variant.Default()
	}
	objects, err := store.List(ctx)
	if err != nil {
		return Report{}, err
	}

	stored := make(map[string]Object, len(objects))
	for _, obj := range objects {
		stored[obj.Name] = obj
	}

	ids := catalog.Identifiers()
	sizes := catalog.Sizes()

	var report Report
	for _, id := range ids {
		obj, ok := stored[id]
		if !ok {
			report.Missing = append(report.Missing, id)
			continue
		}
		if id == variant.Universal {
			report.UniversalPresent = true
		}
		if want, ok := sizes[id]; ok && want != obj.Size {
			report.Mismatched = append(report.Mismatched, SizeMismatch{Name: id, Catalog: want, Stored: obj.Size})
		}
	}

	for _, obj := range objects {
		if !slices.Contains(ids, obj.Name) {
			report.Unreferenced = append(report.Unreferenced, obj.Name)
		}
	}

	return report, nil
}
