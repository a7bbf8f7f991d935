package binder

import "net/http"

// Path binds router path parameters into fields tagged `path:"name"`,
// reading each through extractor. With chi:
//
//	binder.Path(chi.URLParam)
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrBinderNotApplicable
		}
		return bindFields(v, "path", func(name string) []string {
			if s := extractor(r, name); s != "" {
				return []string{s}
			}
			return nil
		}, ErrInvalidPath)
	}
}
