package device

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header before parsing. 4KB is far beyond
// any legitimate preference list.
const maxAcceptLanguageLength = 4096

// Query parameters the download page script uses to report signals the
// server cannot see (window.devicePixelRatio, screen size, navigator.language).
const (
	QueryPixelRatio   = "dpr"
	QueryScreenWidth  = "sw"
	QueryScreenHeight = "sh"
	QueryLocale       = "lang"
)

// Client hint headers consulted when the page did not report the values itself.
const (
	HeaderClientHintDPR      = "Sec-CH-DPR"
	HeaderDPR                = "DPR"
	HeaderViewportWidth      = "Sec-CH-Viewport-Width"
	HeaderAcceptLanguage     = "Accept-Language"
	HeaderAcceptClientHints  = "Accept-CH"
	AcceptClientHintsDefault = "Sec-CH-DPR, DPR, Sec-CH-Viewport-Width"
)

// FromRequest collects the profiler inputs from an HTTP request.
// Query overrides win over headers. Unparsable values are treated as absent.
func FromRequest(r *http.Request) Environment {
	q := r.URL.Query()

	env := Environment{
		UserAgent: r.UserAgent(),
	}

	env.PixelRatio = firstFloat(
		q.Get(QueryPixelRatio),
		r.Header.Get(HeaderClientHintDPR),
		r.Header.Get(HeaderDPR),
	)
	env.ScreenWidth = firstInt(q.Get(QueryScreenWidth), r.Header.Get(HeaderViewportWidth))
	env.ScreenHeight = firstInt(q.Get(QueryScreenHeight))

	if lang := strings.TrimSpace(q.Get(QueryLocale)); lang != "" {
		env.Locale = lang
	} else {
		env.Locale = PreferredLocale(r.Header.Get(HeaderAcceptLanguage))
	}

	return env
}

// PreferredLocale returns the highest-quality tag of an Accept-Language header,
// or an empty string when the header is empty, malformed or only a wildcard.
func PreferredLocale(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		// cut at an entry boundary so a half entry does not fail the whole parse
		header = header[:maxAcceptLanguageLength]
		if idx := strings.LastIndexByte(header, ','); idx > 0 {
			header = header[:idx]
		}
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}
	for _, tag := range tags {
		// "*" parses as "mul"
		if s := tag.String(); s != "und" && s != "mul" {
			return s
		}
	}
	return ""
}

func firstFloat(values ...string) float64 {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

func firstInt(values ...string) int {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return 0
}
