package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
// Slices accept repeated or comma-separated values; pointers mark
// optional fields.
//
//	type qrRequest struct {
//		Size int    `query:"size"`
//		URL  string `query:"url"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindFields(v, "query", func(name string) []string { return q[name] }, ErrInvalidQuery)
	}
}
