package binder

import "net/http"

// Header binds request headers into fields tagged `header:"Name"`.
// Names are canonicalized, so `header:"user-agent"` works.
func Header() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindFields(v, "header", func(name string) []string {
			return r.Header.Values(name)
		}, ErrInvalidHeader)
	}
}
