package device

import (
	"cmp"
	"math"
	"slices"
)

type densityBucket struct {
	ratio   float64
	density Density
}

// densityTable order is the tie-break order: at equal distance the earlier entry wins.
var densityTable = []densityBucket{
	{0.75, DensityLDPI},
	{1, DensityMDPI},
	{1.33, DensityTVDPI},
	{1.5, DensityHDPI},
	{2, DensityXHDPI},
	{3, DensityXXHDPI},
	{4, DensityXXXHDPI},
}

// NormalizePixelRatio replaces missing or nonsensical ratios with DefaultPixelRatio.
func NormalizePixelRatio(ratio float64) float64 {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return DefaultPixelRatio
	}
	return ratio
}

// ParseDensity maps a device pixel ratio to the nearest density bucket.
// The result is always one of the seven buckets.
func ParseDensity(ratio float64) Density {
	ratio = NormalizePixelRatio(ratio)

	candidates := slices.Clone(densityTable)
	slices.SortStableFunc(candidates, func(a, b densityBucket) int {
		return cmp.Compare(math.Abs(a.ratio-ratio), math.Abs(b.ratio-ratio))
	})

	if len(candidates) == 0 {
		return DefaultDensity
	}
	return candidates[0].density
}
