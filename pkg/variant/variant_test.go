package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/device"
	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profile  device.Profile
		expected string
	}{
		{
			name:     "android with architecture",
			profile:  device.Profile{OS: device.OSAndroid, Architecture: device.ArchARM64, Density: device.DensityXXHDPI, Language: "en"},
			expected: "base-arm64_v8a.apk",
		},
		{
			name:     "android without architecture falls to density",
			profile:  device.Profile{OS: device.OSAndroid, Density: device.DensityMDPI, Language: "en"},
			expected: "base-mdpi.apk",
		},
		{
			name:     "android with unsupported architecture falls to density",
			profile:  device.Profile{OS: device.OSAndroid, Architecture: "mips", Density: device.DensityHDPI},
			expected: "base-hdpi.apk",
		},
		{
			name:     "android without density falls to language",
			profile:  device.Profile{OS: device.OSAndroid, Language: "de"},
			expected: "base-de.apk",
		},
		{
			name:     "android with unknown language falls to universal",
			profile:  device.Profile{OS: device.OSAndroid, Language: "tlh"},
			expected: variant.Universal,
		},
		{
			name:     "android with invalid density and no language",
			profile:  device.Profile{OS: device.OSAndroid, Density: "ultradpi"},
			expected: variant.Universal,
		},
		{
			name:     "zero profile",
			profile:  device.Profile{},
			expected: variant.Universal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, variant.Select(tc.profile))
		})
	}
}

func TestSelectDetectedARMMarkers(t *testing.T) {
	t.Parallel()

	uas := map[string]string{
		"armv8l":    "Mozilla/5.0 (Linux; Android 9; armv8l) AppleWebKit/537.36 Chrome/110.0 Mobile Safari/537.36",
		"armhf":     "Mozilla/5.0 (Linux; Android 8; armhf) AppleWebKit/537.36 Chrome/110.0 Mobile Safari/537.36",
		"linux_arm": "Mozilla/5.0 (Linux; Android 10; linux_arm) AppleWebKit/537.36 Chrome/110.0 Mobile Safari/537.36",
		"arm":       "Mozilla/5.0 (Linux; Android 7; arm) AppleWebKit/537.36 Chrome/110.0 Mobile Safari/537.36",
	}

	for name, ua := range uas {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := device.Detect(device.Environment{UserAgent: ua, PixelRatio: 2})
			assert.Equal(t, "base-armeabi_v7a.apk", variant.Select(p))
		})
	}
}

func TestSelectNonAndroidAlwaysUniversal(t *testing.T) {
	t.Parallel()

	oses := []device.OS{device.OSiOS, device.OSWindows, device.OSMac, device.OSLinux, device.OSUnknown}
	archs := []device.Architecture{device.ArchUnknown, device.ArchARM64, device.ArchARMv7, device.ArchX86, device.ArchX86_64}
	densities := []device.Density{device.DensityLDPI, device.DensityMDPI, device.DensityXXXHDPI, ""}
	languages := []string{"en", "fr", "", "xx"}

	for _, os := range oses {
		for _, arch := range archs {
			for _, d := range densities {
				for _, lang := range languages {
					p := device.Profile{OS: os, Architecture: arch, Density: d, Language: lang, Is64Bit: true}
					require.Equal(t, variant.Universal, variant.Select(p), "%+v", p)
				}
			}
		}
	}
}

func TestSelectFromDetectedProfiles(t *testing.T) {
	t.Parallel()

	markers := map[string]string{
		"arm64":   "base-arm64_v8a.apk",
		"aarch64": "base-arm64_v8a.apk",
		"armv7l":  "base-armeabi_v7a.apk",
		"amd64":   "base-x86_64.apk",
		"x64":     "base-x86_64.apk",
		"i686":    "base-x86.apk",
		"x86":     "base-x86.apk",
	}

	for marker, expected := range markers {
		ua := "Mozilla/5.0 (Linux; Android 12; " + marker + ") AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
		p := device.Detect(device.Environment{UserAgent: ua, PixelRatio: 2})
		assert.Equal(t, expected, variant.Select(p), marker)
	}

	t.Run("aarch64 at ratio 3", func(t *testing.T) {
		p := device.Detect(device.Environment{
			UserAgent:  "Mozilla/5.0 (Linux; Android 14; aarch64) AppleWebKit/537.36 Chrome/120.0.0.0 Mobile Safari/537.36",
			PixelRatio: 3,
		})
		assert.Equal(t, device.ArchARM64, p.Architecture)
		assert.Equal(t, device.DensityXXHDPI, p.Density)
		assert.Equal(t, "base-arm64_v8a.apk", variant.Select(p))
	})

	t.Run("iphone at ratio 3", func(t *testing.T) {
		p := device.Detect(device.Environment{
			UserAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1",
			PixelRatio: 3,
		})
		assert.Equal(t, device.OSiOS, p.OS)
		assert.Equal(t, variant.Universal, variant.Select(p))
	})

	t.Run("android without architecture at ratio 1", func(t *testing.T) {
		p := device.Detect(device.Environment{
			UserAgent:  "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 Chrome/116.0.0.0 Mobile Safari/537.36",
			PixelRatio: 1,
		})
		assert.Equal(t, device.DensityMDPI, p.Density)
		assert.Equal(t, "base-mdpi.apk", variant.Select(p))
	})

	t.Run("unmatched user agent", func(t *testing.T) {
		p := device.Detect(device.Environment{UserAgent: "curl/8.4.0"})
		assert.Equal(t, device.OSUnknown, p.OS)
		assert.Equal(t, variant.Universal, variant.Select(p))
	})
}

func TestSelectIsIdempotent(t *testing.T) {
	t.Parallel()

	p := device.Profile{OS: device.OSAndroid, Architecture: device.ArchARMv7, Density: device.DensityHDPI}
	assert.Equal(t, variant.Select(p), variant.Select(p))
}

func TestReadableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       string
		expected string
	}{
		{id: "universal.apk", expected: "Universal APK"},
		{id: "base-arm64_v8a.apk", expected: "ARM64 (64-bit)"},
		{id: "base-armeabi_v7a.apk", expected: "ARM (32-bit)"},
		{id: "base-x86.apk", expected: "Intel x86 (32-bit)"},
		{id: "base-x86_64.apk", expected: "Intel x86 (64-bit)"},
		{id: "base-mdpi.apk", expected: "Medium Density"},
		{id: "base-tvdpi.apk", expected: "TV Density"},
		{id: "base-xxxhdpi.apk", expected: "Extra Extra Extra High Density"},
		{id: "base-en.apk", expected: "English Version"},
		{id: "base-ja.apk", expected: "Japanese Version"},
		{id: "base-xx.apk", expected: "XX"},
		{id: "something", expected: "SOMETHING"},
		{id: "", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, variant.ReadableName(tc.id))
		})
	}
}

func TestSizeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(52451179), variant.SizeOf("universal.apk"))
	assert.Equal(t, int64(4080322), variant.SizeOf("base-arm64_v8a.apk"))
	assert.Equal(t, int64(98650), variant.SizeOf("base-en.apk"))
	assert.Equal(t, int64(5000000), variant.SizeOf("not-a-real-file.apk"))
	assert.Equal(t, variant.DefaultSize, variant.SizeOf("base-mdpi.apk"))
	// no partial matching
	assert.Equal(t, variant.DefaultSize, variant.SizeOf("universal"))
	assert.Equal(t, variant.DefaultSize, variant.SizeOf("UNIVERSAL.APK"))
}

func TestChoose(t *testing.T) {
	t.Parallel()

	c := variant.Default()
	choice := c.Choose(device.Profile{OS: device.OSAndroid, Architecture: device.ArchARM64, Density: device.DensityXHDPI})

	assert.Equal(t, variant.Choice{
		ID:        "base-arm64_v8a.apk",
		Name:      "ARM64 (64-bit)",
		Size:      4080322,
		HumanSize: "3.9 MB",
	}, choice)
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "50.0 MB", variant.FormatSize(52428800))
	assert.Equal(t, "96.3 KB", variant.FormatSize(98650))
	assert.Equal(t, "1.0 KB", variant.FormatSize(1024))
	assert.Equal(t, "512 bytes", variant.FormatSize(512))
	assert.Equal(t, "0 bytes", variant.FormatSize(0))
}

func TestNew(t *testing.T) {
	t.Parallel()

	langs := map[string]string{"UK": "Ukrainian", "": "Nothing", "pl": ""}
	sizes := map[string]int64{"base-uk.apk": 101234, "base-mdpi.apk": 0, "universal.apk": 60000000}
	c := variant.New(variant.WithLanguages(langs), variant.WithSizes(sizes))

	// mutating inputs after construction has no effect
	langs["fi"] = "Finnish"
	sizes["base-fi.apk"] = 1

	label, ok := c.LanguageLabel("uk")
	require.True(t, ok)
	assert.Equal(t, "Ukrainian", label)
	_, ok = c.LanguageLabel("pl")
	assert.False(t, ok)
	_, ok = c.LanguageLabel("fi")
	assert.False(t, ok)

	assert.Equal(t, "Ukrainian Version", c.ReadableName("base-uk.apk"))
	assert.Equal(t, int64(101234), c.SizeOf("base-uk.apk"))
	assert.Equal(t, int64(60000000), c.SizeOf("universal.apk"))
	assert.Equal(t, variant.DefaultSize, c.SizeOf("base-mdpi.apk"))
	assert.Equal(t, variant.DefaultSize, c.SizeOf("base-fi.apk"))

	// the default catalog is untouched
	_, ok = variant.Default().LanguageLabel("uk")
	assert.False(t, ok)
	assert.Equal(t, int64(52451179), variant.SizeOf("universal.apk"))

	// accessors hand out copies
	c.Sizes()["universal.apk"] = 1
	c.Languages()["uk"] = "changed"
	assert.Equal(t, int64(60000000), c.SizeOf("universal.apk"))
	assert.Equal(t, "Ukrainian Version", c.ReadableName("base-uk.apk"))
}

func TestLabels(t *testing.T) {
	t.Parallel()

	c := variant.Default()
	for _, a := range []device.Architecture{device.ArchARM64, device.ArchARMv7, device.ArchX86, device.ArchX86_64} {
		_, ok := c.ArchitectureLabel(a)
		assert.True(t, ok, a)
	}
	_, ok := c.ArchitectureLabel(device.ArchUnknown)
	assert.False(t, ok)

	densities := []device.Density{
		device.DensityLDPI, device.DensityMDPI, device.DensityHDPI, device.DensityXHDPI,
		device.DensityXXHDPI, device.DensityXXXHDPI, device.DensityTVDPI,
	}
	for _, d := range densities {
		_, ok := c.DensityLabel(d)
		assert.True(t, ok, d)
	}
}

func TestIdentifiers(t *testing.T) {
	t.Parallel()

	ids := variant.Default().Identifiers()

	require.NotEmpty(t, ids)
	assert.Equal(t, variant.Universal, ids[0])
	assert.Len(t, ids, 1+4+7+10)
	assert.Contains(t, ids, "base-arm64_v8a.apk")
	assert.Contains(t, ids, "base-tvdpi.apk")
	assert.Contains(t, ids, "base-ko.apk")
	assert.IsNonDecreasing(t, ids[1:])
}
