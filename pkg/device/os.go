package device

import (
	"regexp"
	"strings"
)

// keywordSet matches when any of its keywords is a substring of the input.
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// osRules is evaluated top to bottom, first match wins.
// Android must precede linux: every Android UA also says "Linux".
var osRules = []struct {
	os       OS
	keywords keywordSet
}{
	{OSAndroid, newKeywordSet("android")},
	{OSiOS, newKeywordSet("iphone", "ipad", "ipod")},
	{OSWindows, newKeywordSet("windows")},
	{OSMac, newKeywordSet("macintosh")},
	{OSLinux, newKeywordSet("linux")},
}

var androidVersionPattern = regexp.MustCompile(`android\s([0-9.]+)`)

// ParseOS classifies a lower-cased user agent into an OS family.
func ParseOS(lowerUA string) OS {
	if lowerUA == "" {
		return OSUnknown
	}
	for _, rule := range osRules {
		if rule.keywords.contains(lowerUA) {
			return rule.os
		}
	}
	return OSUnknown
}

// ParseOSVersion extracts the Android version from a lower-cased user agent.
// Returns an empty string for non-Android systems or when no version follows the marker.
func ParseOSVersion(lowerUA string, os OS) string {
	if os != OSAndroid {
		return ""
	}
	if m := androidVersionPattern.FindStringSubmatch(lowerUA); len(m) > 1 {
		return m[1]
	}
	return ""
}
