package device

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// Profile is the normalized view of a client device.
// Every field has a defined value for every input; see Detect.
type Profile struct {
	OS           OS           `json:"os"`
	OSVersion    string       `json:"osVersion,omitempty"`
	Architecture Architecture `json:"architecture,omitempty"`
	Density      Density      `json:"density"`
	Language     string       `json:"language"`
	Region       string       `json:"region,omitempty"`
	Manufacturer string       `json:"manufacturer"`
	Model        string       `json:"model"`
	IsTablet     bool         `json:"isTablet"`
	Is64Bit      bool         `json:"is64Bit"`

	// Informational only. Variant selection does not read these.
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	PixelRatio   float64 `json:"pixelRatio"`

	Browser        string `json:"browser,omitempty"`
	BrowserVersion string `json:"browserVersion,omitempty"`
	IsBot          bool   `json:"isBot"`

	UserAgent string `json:"userAgent"`
}

// Environment carries the raw client signals the profiler works from.
type Environment struct {
	UserAgent    string
	Locale       string
	PixelRatio   float64
	ScreenWidth  int
	ScreenHeight int
}

// Detect builds a Profile from the environment. It never fails: missing or
// garbled signals degrade to the documented defaults. Equal environments
// always produce equal profiles.
func Detect(env Environment) Profile {
	lowerUA := strings.ToLower(env.UserAgent)

	os := ParseOS(lowerUA)
	language, region := ParseLocale(env.Locale)
	manufacturer, model := ParseManufacturer(env.UserAgent)
	pixelRatio := NormalizePixelRatio(env.PixelRatio)

	p := Profile{
		OS:           os,
		OSVersion:    ParseOSVersion(lowerUA, os),
		Architecture: ParseArchitecture(lowerUA),
		Density:      ParseDensity(pixelRatio),
		Language:     language,
		Region:       region,
		Manufacturer: manufacturer,
		Model:        model,
		IsTablet:     IsTablet(env.UserAgent),
		Is64Bit:      Is64Bit(lowerUA),
		ScreenWidth:  max(env.ScreenWidth, 0),
		ScreenHeight: max(env.ScreenHeight, 0),
		PixelRatio:   pixelRatio,
		UserAgent:    env.UserAgent,
	}

	if env.UserAgent != "" {
		parsed := ua.Parse(env.UserAgent)
		p.Browser = parsed.Name
		p.BrowserVersion = parsed.Version
		p.IsBot = parsed.Bot
	}

	return p
}
