package download

import "github.com/dmitrymomot/apkdrop/pkg/share"

// Config holds the download module settings.
type Config struct {
	// ShareURL is the page advertised by the share endpoints. When empty
	// it is derived from the request host as {scheme}://{host}/download.
	ShareURL   string `env:"SHARE_URL"`
	ShareTitle string `env:"SHARE_TITLE" envDefault:"Download our app"`
	ShareText  string `env:"SHARE_TEXT" envDefault:"Get the perfect app for your device"`

	// RateLimitFailOpen serves downloads when the limiter store is down.
	RateLimitFailOpen bool `env:"DOWNLOAD_RATE_FAIL_OPEN" envDefault:"true"`
}

func (c Config) withDefaults() Config {
	if c.ShareTitle == "" {
		c.ShareTitle = share.DefaultTitle
	}
	if c.ShareText == "" {
		c.ShareText = share.DefaultText
	}
	return c
}
