package hpxmap

import (
	"fmt"

	"github.com/erykoff/skyproj/hpgeom"
)

// Bin aggregates scattered sky samples into a dense map at the given
// resolution. Every (lon, lat) sample increments its pixel's count;
// repeated pixels accumulate. With values supplied, the output is the
// per-pixel mean (sum/count) where the count is positive; without
// values (nil), the output is the count itself as float64. Pixels no
// sample landed in carry the unseen sentinel.
//
// Returns ErrSizeMismatch for mismatched slice lengths and
// hpgeom.ErrInvalidNSide for a bad resolution.
// Complexity: O(n + npix) time, O(npix) memory.
func Bin(nside int64, lon, lat, values []float64, ordering hpgeom.Ordering) ([]float64, error) {
	if len(lon) != len(lat) {
		return nil, fmt.Errorf("%d lon, %d lat: %w", len(lon), len(lat), ErrSizeMismatch)
	}
	if values != nil && len(values) != len(lon) {
		return nil, fmt.Errorf("%d samples, %d values: %w", len(lon), len(values), ErrSizeMismatch)
	}
	npix, err := hpgeom.NSideToNPixel(nside)
	if err != nil {
		return nil, err
	}
	pix, err := hpgeom.AngleToPixel(nside, lon, lat, ordering)
	if err != nil {
		return nil, err
	}

	counts := make([]float64, npix)
	var sums []float64
	if values != nil {
		sums = make([]float64, npix)
	}
	for i, p := range pix {
		counts[p]++
		if sums != nil {
			sums[p] += values[i]
		}
	}

	out := make([]float64, npix)
	for i := range out {
		switch {
		case counts[i] == 0:
			out[i] = hpgeom.Unseen
		case sums != nil:
			out[i] = sums[i] / counts[i]
		default:
			out[i] = counts[i]
		}
	}

	return out, nil
}
