package handler

import "net/http"

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect returns a 302 Found redirect. The response is marked
// uncacheable since the target may depend on request headers.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusFound}
}

// RedirectWithCode returns a redirect with a specific 3xx status.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
