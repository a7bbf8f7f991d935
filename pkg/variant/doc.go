// Package variant maps a device profile to one file of a fixed catalog of
// Android package variants and resolves display metadata for it.
//
// The catalog knows four ABI splits (base-arm64_v8a.apk, base-armeabi_v7a.apk,
// base-x86.apk, base-x86_64.apk), seven density splits (base-mdpi.apk, ...),
// an extensible set of language splits (base-en.apk, ...) and the universal
// build. Selection follows a fixed priority: OS, then architecture, then
// density, then language, then universal.apk. The universal package is always
// a valid answer.
//
// All functions are pure and total. The default catalog is built once and
// shared; custom catalogs can be created with New or loaded from YAML with
// Load/LoadFile, and are never modified afterwards.
//
// # Usage
//
//	p := device.Detect(device.FromRequest(r))
//	id := variant.Select(p)         // "base-arm64_v8a.apk"
//	name := variant.ReadableName(id) // "ARM64 (64-bit)"
//	size := variant.SizeOf(id)       // 4080322
//
// Whether each selectable identifier has a real file behind it is a
// deployment concern; see apkstore.Audit.
package variant
