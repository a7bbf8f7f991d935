package device

// OS is the operating system family inferred from the user agent.
type OS string

// Operating system families. The set is closed: every profile carries one of these.
const (
	// OSAndroid identifies Google Android
	OSAndroid OS = "android"

	// OSiOS identifies Apple iOS and iPadOS
	OSiOS OS = "ios"

	// OSWindows identifies Microsoft Windows
	OSWindows OS = "windows"

	// OSMac identifies Apple macOS
	OSMac OS = "mac"

	// OSLinux identifies desktop Linux distributions
	OSLinux OS = "linux"

	// OSUnknown is used when no operating system marker matches
	OSUnknown OS = "unknown"
)

// Valid reports whether o is one of the defined OS families.
func (o OS) Valid() bool {
	switch o {
	case OSAndroid, OSiOS, OSWindows, OSMac, OSLinux, OSUnknown:
		return true
	}
	return false
}

func (o OS) String() string { return string(o) }

// Architecture is the Android ABI guessed from the user agent.
// The zero value means no architecture signal was found.
type Architecture string

// Supported Android ABIs.
const (
	ArchARM64  Architecture = "arm64_v8a"
	ArchARMv7  Architecture = "armeabi_v7a"
	ArchX86    Architecture = "x86"
	ArchX86_64 Architecture = "x86_64"

	// ArchUnknown means the user agent carried no recognizable architecture token
	ArchUnknown Architecture = ""
)

// Valid reports whether a is one of the four supported ABIs.
func (a Architecture) Valid() bool {
	switch a {
	case ArchARM64, ArchARMv7, ArchX86, ArchX86_64:
		return true
	}
	return false
}

func (a Architecture) String() string { return string(a) }

// Density is an Android screen density bucket.
type Density string

// Android density buckets.
const (
	DensityLDPI    Density = "ldpi"
	DensityMDPI    Density = "mdpi"
	DensityHDPI    Density = "hdpi"
	DensityXHDPI   Density = "xhdpi"
	DensityXXHDPI  Density = "xxhdpi"
	DensityXXXHDPI Density = "xxxhdpi"
	DensityTVDPI   Density = "tvdpi"
)

// DefaultDensity is used whenever the pixel ratio is unavailable.
const DefaultDensity = DensityMDPI

// Valid reports whether d is one of the seven density buckets.
func (d Density) Valid() bool {
	switch d {
	case DensityLDPI, DensityMDPI, DensityHDPI, DensityXHDPI, DensityXXHDPI, DensityXXXHDPI, DensityTVDPI:
		return true
	}
	return false
}

func (d Density) String() string { return string(d) }

// Fallback values for descriptive fields.
const (
	// Unknown is used for manufacturer and model when no brand pattern matches
	Unknown = "unknown"

	// DefaultLanguage is used when no locale signal is present
	DefaultLanguage = "en"

	// DefaultPixelRatio is assumed when the client did not report one
	DefaultPixelRatio = 1.0
)
