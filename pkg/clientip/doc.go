// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// A Resolver checks a list of trusted proxy headers in priority order and
// falls back to the TCP peer address. The default list is:
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean App Platform)
//  3. X-Forwarded-For (first valid entry)
//  4. X-Real-IP (Nginx)
//
// When the service is exposed directly, trust no headers so clients cannot
// spoof their address and dodge per-IP download limits:
//
//	resolver := clientip.New(clientip.WithTrustedHeaders())
//	r.Use(resolver.Middleware)
//
// Handlers read the resolved address with FromContext.
package clientip
