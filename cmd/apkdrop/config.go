package main

import "time"

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"apkdrop"`

	// CatalogFile is an optional YAML catalog; empty uses the built-in one.
	CatalogFile string `env:"CATALOG_FILE"`

	// TrustProxyHeaders lists the headers that may carry the client IP.
	// Unset trusts the common CDN and proxy headers; "none" trusts none.
	TrustProxyHeaders []string `env:"TRUST_PROXY_HEADERS" envSeparator:","`

	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`
	AuditTimeout     time.Duration `env:"AUDIT_TIMEOUT" envDefault:"30s"`
}
