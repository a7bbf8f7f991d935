package device

import (
	"regexp"
	"strings"
)

// brandRules is ordered by how specific the pattern is. Short, ambiguous
// patterns such as "lg" sit at the bottom so they only win when nothing else did.
var brandRules = []struct {
	manufacturer string
	pattern      *regexp.Regexp
}{
	{"samsung", regexp.MustCompile(`(?i)samsung|sm-`)},
	{"xiaomi", regexp.MustCompile(`(?i)xiaomi|mi\s|redmi|poco`)},
	{"huawei", regexp.MustCompile(`(?i)huawei|honor`)},
	{"oneplus", regexp.MustCompile(`(?i)oneplus`)},
	{"google", regexp.MustCompile(`(?i)pixel|nexus`)},
	{"oppo", regexp.MustCompile(`(?i)oppo`)},
	{"vivo", regexp.MustCompile(`(?i)vivo`)},
	{"realme", regexp.MustCompile(`(?i)realme`)},
	{"motorola", regexp.MustCompile(`(?i)motorola|moto`)},
	{"sony", regexp.MustCompile(`(?i)sony`)},
	{"asus", regexp.MustCompile(`(?i)asus`)},
	{"nokia", regexp.MustCompile(`(?i)nokia`)},
	{"lg", regexp.MustCompile(`(?i)lg`)},
}

// modelPattern captures the token after a known model prefix, e.g. "G991B" from "SM-G991B".
var modelPattern = regexp.MustCompile(`(?i)(?:sm-|mi\s|redmi\s|poco\s|honor\s)([a-z0-9]+)`)

// ParseManufacturer identifies the handset brand and, where the brand uses a
// recognizable prefix, the model code. It works on the raw user agent.
func ParseManufacturer(userAgent string) (manufacturer, model string) {
	manufacturer, model = Unknown, Unknown
	for _, rule := range brandRules {
		if !rule.pattern.MatchString(userAgent) {
			continue
		}
		manufacturer = rule.manufacturer
		if m := modelPattern.FindStringSubmatch(userAgent); len(m) > 1 {
			model = m[1]
		}
		break
	}
	return manufacturer, model
}

// IsTablet reports whether the user agent looks like a tablet: it mentions
// "tablet" or "ipad", or it is Android without a following "mobile" token.
func IsTablet(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return true
	}
	return androidWithoutMobile(ua)
}

// androidWithoutMobile reports whether some "android" occurrence has no
// "mobile" after it on the same line.
func androidWithoutMobile(lowerUA string) bool {
	const marker = "android"
	offset := 0
	for {
		idx := strings.Index(lowerUA[offset:], marker)
		if idx < 0 {
			return false
		}
		start := offset + idx + len(marker)
		rest := lowerUA[start:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}
		if !strings.Contains(rest, "mobile") {
			return true
		}
		offset = start
	}
}
