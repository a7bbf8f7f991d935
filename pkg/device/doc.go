// Package device turns noisy client signals into a normalized device profile.
//
// The profiler reads the user agent, the device pixel ratio, the screen size
// and the preferred locale, and classifies them into an OS family, an Android
// ABI guess, a screen density bucket and a language. Every classifier is an
// ordered list of rules evaluated top to bottom where the first match wins;
// the order matters because patterns overlap ("arm" is a substring of
// "arm64", every Android UA also says "Linux").
//
// Detect never fails. Missing data degrades to defaults: OS "unknown", no
// architecture, density "mdpi", language "en", manufacturer and model
// "unknown". Two calls with the same Environment return equal profiles, so the
// profiler is safe to run on every request and from concurrent goroutines.
//
// # Usage
//
//	p := device.Detect(device.Environment{
//	    UserAgent:  r.UserAgent(),
//	    Locale:     "pt-BR",
//	    PixelRatio: 2.75,
//	})
//	// p.OS == device.OSAndroid, p.Density == device.DensityXXHDPI, ...
//
// In an HTTP server, FromRequest gathers the signals from headers (User-Agent,
// Sec-CH-DPR / DPR, Sec-CH-Viewport-Width, Accept-Language) and from query
// overrides sent by the page script (dpr, sw, sh, lang). Middleware runs the
// detection once and stores the profile in the request context:
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware)
//	r.Get("/api/device", func(w http.ResponseWriter, r *http.Request) {
//	    p, _ := device.FromContext(r.Context())
//	    ...
//	})
//
// # Known limitations
//
// Architecture and Is64Bit are derived independently and may disagree: a UA
// with "x86_64" yields architecture "x86" and Is64Bit false, while a UA with
// only "Win64; x64" yields "x86_64" and true. Neither is corrected here.
package device
