package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are the proxy headers consulted, in priority order, before
// falling back to the TCP peer address.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver determines the originating client address of a request.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTrustedHeaders replaces the list of proxy headers to trust.
// An empty list means only RemoteAddr is used.
func WithTrustedHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = headers
	}
}

// New creates a Resolver trusting DefaultHeaders unless configured otherwise.
func New(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IP returns the normalized client IP, or "" if no valid address is found.
// X-Forwarded-For may list several hops; the first valid one wins.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// HeaderForwardedProto carries the scheme the client used at the proxy.
const HeaderForwardedProto = "X-Forwarded-Proto"

// Scheme returns "https" or "http" for the request as the client sent it.
// X-Forwarded-Proto is honoured only while the resolver trusts proxy
// headers at all, so disabling them also pins the scheme to the connection.
func (res *Resolver) Scheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if len(res.headers) > 0 {
		proto, _, _ := strings.Cut(r.Header.Get(HeaderForwardedProto), ",")
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return "https"
		}
	}
	return "http"
}

// Middleware stores the resolved IP and scheme in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), res.IP(r))
		ctx = WithScheme(ctx, res.Scheme(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

var defaultResolver = New()

// GetIP resolves the client IP with DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// Middleware stores the client IP resolved with DefaultHeaders in the
// request context.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
