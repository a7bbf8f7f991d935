package device

import "regexp"

// archRules is ordered: "arm64" also contains "arm", so the 64-bit rule goes
// first. Any other "arm" marker (armv7l, armv8l, armhf, linux_arm) is 32-bit ARM.
var archRules = []struct {
	arch    Architecture
	pattern *regexp.Regexp
}{
	{ArchARM64, regexp.MustCompile(`arm64|aarch64`)},
	{ArchARMv7, regexp.MustCompile(`arm`)},
	{ArchX86_64, regexp.MustCompile(`x64|amd64`)},
	{ArchX86, regexp.MustCompile(`x86|i686|intel`)},
}

// is64BitPattern is deliberately broader than any single archRules entry and is
// evaluated on its own. It can report true while ParseArchitecture finds nothing.
var is64BitPattern = regexp.MustCompile(`arm64|aarch64|x64|amd64`)

// ParseArchitecture guesses the ABI from a lower-cased user agent.
// Returns ArchUnknown when no rule matches; callers must treat that as "no signal".
func ParseArchitecture(lowerUA string) Architecture {
	for _, rule := range archRules {
		if rule.pattern.MatchString(lowerUA) {
			return rule.arch
		}
	}
	return ArchUnknown
}

// Is64Bit reports whether a lower-cased user agent carries a 64-bit marker.
func Is64Bit(lowerUA string) bool {
	return is64BitPattern.MatchString(lowerUA)
}
