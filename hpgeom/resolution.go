package hpgeom

import (
	"fmt"
	"math"
)

// IsValidNSide reports whether nside is a power of two in [1, MaxNSide].
// Complexity: O(1).
func IsValidNSide(nside int64) bool {
	return nside >= 1 && nside <= MaxNSide && nside&(nside-1) == 0
}

// NSideToOrder returns the order k with nside = 2^k.
// Returns ErrInvalidNSide if nside is not a power of two in range.
// Complexity: O(log nside).
func NSideToOrder(nside int64) (int, error) {
	if !IsValidNSide(nside) {
		return 0, fmt.Errorf("nside %d: %w", nside, ErrInvalidNSide)
	}
	order := 0
	for n := nside; n > 1; n >>= 1 {
		order++
	}

	return order, nil
}

// OrderToNSide returns nside = 2^order.
// Returns ErrInvalidNSide if order is outside [0, MaxOrder].
// Complexity: O(1).
func OrderToNSide(order int) (int64, error) {
	if order < 0 || order > MaxOrder {
		return 0, fmt.Errorf("order %d: %w", order, ErrInvalidNSide)
	}

	return int64(1) << order, nil
}

// NSideToNPixel returns the total pixel count 12*nside^2.
// Returns ErrInvalidNSide if nside is not a power of two in range.
// Complexity: O(1).
func NSideToNPixel(nside int64) (int64, error) {
	if !IsValidNSide(nside) {
		return 0, fmt.Errorf("nside %d: %w", nside, ErrInvalidNSide)
	}

	return 12 * nside * nside, nil
}

// NPixelToNSide inverts NSideToNPixel, recovering nside from a dense
// map length. Returns ErrInvalidNPixel if npix is not 12*nside^2 for
// any valid nside.
// Complexity: O(1).
func NPixelToNSide(npix int64) (int64, error) {
	if npix <= 0 || npix%12 != 0 {
		return 0, fmt.Errorf("npix %d: %w", npix, ErrInvalidNPixel)
	}
	nside := int64(math.Round(math.Sqrt(float64(npix / 12))))
	if !IsValidNSide(nside) || 12*nside*nside != npix {
		return 0, fmt.Errorf("npix %d: %w", npix, ErrInvalidNPixel)
	}

	return nside, nil
}

// MaxPixelRadius returns an upper bound, in degrees, on the angular
// distance from any pixel center to its farthest boundary point at
// the given resolution. The bound is the angle between the center of
// the first ring pixel and its northernmost corner.
// Returns ErrInvalidNSide for an invalid nside.
// Complexity: O(1).
func MaxPixelRadius(nside int64) (float64, error) {
	if !IsValidNSide(nside) {
		return 0, fmt.Errorf("nside %d: %w", nside, ErrInvalidNSide)
	}
	ns := float64(nside)
	ax, ay, az := vecZPhi(2.0/3.0, math.Pi/(4*ns))
	t1 := 1 - 1/ns
	t1 *= t1
	bx, by, bz := vecZPhi(1-t1/3, 0)

	// Angle between the two unit vectors, via atan2 for stability near 0.
	cx := ay*bz - az*by
	cy := az*bx - ax*bz
	cz := ax*by - ay*bx
	cross := math.Sqrt(cx*cx + cy*cy + cz*cz)
	dot := ax*bx + ay*by + az*bz

	return math.Atan2(cross, dot) * 180 / math.Pi, nil
}

// vecZPhi builds the unit vector with the given z and azimuth phi.
func vecZPhi(z, phi float64) (x, y, zz float64) {
	sintheta := math.Sqrt((1 - z) * (1 + z))

	return sintheta * math.Cos(phi), sintheta * math.Sin(phi), z
}
