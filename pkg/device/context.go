package device

import (
	"context"
	"net/http"
)

type contextKey struct{}

// WithContext stores a profile in the context.
func WithContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext retrieves the profile stored by Middleware.
func FromContext(ctx context.Context) (Profile, bool) {
	if ctx == nil {
		return Profile{}, false
	}
	p, ok := ctx.Value(contextKey{}).(Profile)
	return p, ok
}

// Middleware profiles the client once per request and stores the result in
// the request context. It also advertises the client hints it understands.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderAcceptClientHints, AcceptClientHintsDefault)
		p := Detect(FromRequest(r))
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), p)))
	})
}

// ProfileRequest returns the profile from the request context, detecting it
// on the spot when Middleware did not run.
func ProfileRequest(r *http.Request) Profile {
	if p, ok := FromContext(r.Context()); ok {
		return p
	}
	return Detect(FromRequest(r))
}
