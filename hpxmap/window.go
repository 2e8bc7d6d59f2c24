package hpxmap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/erykoff/skyproj/hpgeom"
)

const degToRad = math.Pi / 180

// poleEps keeps latitude bounds strictly inside the poles, where
// cylindrical-style projections degenerate.
const poleEps = 1e-5

// seamEps keeps a full-circle longitude bound just short of the wrap
// seam so the two edges never coincide.
const seamEps = 1e-5

// PixelsWindow computes the minimal lon/lat window covering the given
// pixels, padded by the pixel radius so true pixel boundaries stay
// inside. Longitudes are first re-wrapped into the seam frame set by
// wrap via ((lon + wrap) mod 360) - wrap, and the longitude pad grows
// by 1/cos(median latitude) to track meridian convergence.
//
// If the padded longitude bound straddles wrap-360 or wrap+360, or
// spans at least 359 degrees, the pixel set is treated as covering
// the full sky and the bound becomes the full [lon0-180, lon0+180)
// range around the wrap's antipode, the upper edge pulled in by a
// small epsilon. Latitude bounds clamp strictly inside ±90.
//
// Returns ErrNoValidPixels for an empty pixel set, or the hpgeom
// validation errors for bad nside/ordering/pixel ids.
// Complexity: O(n log n) (latitude median).
func PixelsWindow(nside int64, ordering hpgeom.Ordering, pix []int64, wrap float64) (LonLatWindow, error) {
	if len(pix) == 0 {
		return LonLatWindow{}, ErrNoValidPixels
	}
	lon, lat, err := hpgeom.PixelToAngle(nside, pix, ordering)
	if err != nil {
		return LonLatWindow{}, err
	}
	eps, err := hpgeom.MaxPixelRadius(nside)
	if err != nil {
		return LonLatWindow{}, err
	}

	latMin := math.Max(floats.Min(lat)-eps, -90+poleEps)
	latMax := math.Min(floats.Max(lat)+eps, 90-poleEps)

	lonWrapped := make([]float64, len(lon))
	for i, l := range lon {
		lonWrapped[i] = floorMod(l+wrap, 360) - wrap
	}
	epsLon := eps / math.Cos(median(lat)*degToRad)
	lonMin := floats.Min(lonWrapped) - epsLon
	lonMax := floats.Max(lonWrapped) + epsLon

	if straddles(lonMin, lonMax, wrap-360) || straddles(lonMin, lonMax, wrap+360) || lonMax-lonMin >= 359 {
		lon0 := wrapDegrees(floorMod(wrap+180, 360))
		lonMin = lon0 - 180
		lonMax = lon0 + 180 - seamEps
	}

	return LonLatWindow{LonMin: lonMin, LonMax: lonMax, LatMin: latMin, LatMax: latMax}, nil
}

// straddles reports whether seam lies strictly inside (lo, hi).
func straddles(lo, hi, seam float64) bool {
	return lo < seam && seam < hi
}

// floorMod returns v modulo m with the result in [0, m), matching
// floor-division semantics for negative v.
func floorMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}

	return r
}

// wrapDegrees maps v into [-180, 180).
func wrapDegrees(v float64) float64 {
	return floorMod(v+180, 360) - 180
}

// median returns the middle value for odd counts and the mean of the
// two middle values for even counts.
func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return 0.5 * (s[n/2-1] + s[n/2])
}
