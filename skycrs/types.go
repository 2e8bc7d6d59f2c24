// Package skycrs defines the projection interface and sentinel errors
// for the sphere↔plane transform layer.
package skycrs

import (
	"errors"
)

// Sentinel errors for skycrs operations.
var (
	// ErrUnknownProjection indicates a Get name outside the registry.
	ErrUnknownProjection = errors.New("skycrs: unknown projection name")
)

// Projection is the transform pair the raster and graticule engines
// consume. Implementations are immutable and safe for concurrent use.
//
// Forward and Inverse are vectorized: they map slices elementwise and
// always return slices of the input length. Angles are degrees,
// longitude first. Inverse marks planar samples outside the
// projection's domain with NaN in both outputs rather than failing.
type Projection interface {
	// Name returns the registry tag ("cyl", "moll", ...). Consumers
	// use it only to pick defaults, never to branch on formulas.
	Name() string

	// Radius returns the characteristic planar radius, 180/pi, so a
	// cylindrical x spans [-180, 180] for lon0 = 0.
	Radius() float64

	// Lon0 returns the central longitude in degrees, normalized into
	// [-180, 180).
	Lon0() float64

	// LonWrap returns the wrap angle (lon0+180) mod 360: the
	// longitude at which this projection's seam is cut.
	LonWrap() float64

	// Forward projects lon/lat (degrees) to planar x/y. Longitudes
	// are wrapped into [wrap-360, wrap) first; values on the wrap
	// meridian itself are nudged just inside the visible side.
	Forward(lon, lat []float64) (x, y []float64)

	// Inverse recovers lon/lat (degrees) from planar x/y, NaN pairs
	// outside the projection domain.
	Inverse(x, y []float64) (lon, lat []float64)
}
