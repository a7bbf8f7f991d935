package device

import "strings"

// maxLanguageLength is the longest primary language subtag RFC 5646 allows.
const maxLanguageLength = 8

// ParseLocale splits a locale tag such as "pt-BR" into a lower-cased language
// and its region subtag. Region is empty when the tag has no hyphen.
// An empty or oversized language yields DefaultLanguage; extension subtags
// after the region are ignored whatever their length.
func ParseLocale(locale string) (language, region string) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return DefaultLanguage, ""
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	language, rest, found := strings.Cut(locale, "-")
	language = strings.ToLower(language)
	if language == "" || len(language) > maxLanguageLength {
		language = DefaultLanguage
	}
	if !found {
		return language, ""
	}

	// "zh-Hant-TW" keeps only the subtag right after the language
	region, _, _ = strings.Cut(rest, "-")
	return language, region
}
