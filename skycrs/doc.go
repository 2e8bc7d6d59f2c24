// Package skycrs supplies the projection transform pair consumed by
// the raster and graticule engines: vectorized, degree-based forward
// and inverse mappings between the sphere and the projection plane.
//
// What:
//
//	A Projection converts longitude/latitude arrays (degrees) to
//	planar x/y arrays and back. Each projection carries a central
//	longitude lon0, the wrap angle it implies ((lon0+180) mod 360),
//	a characteristic radius, and a name tag. The closed-form math
//	comes from github.com/owlpinetech/flatsphere (Mollweide is
//	implemented locally); this package wraps the backends into the
//	lon-first, degree-based, seam-aware contract the rest of the
//	module consumes.
//
// Why:
//
//	The numerical core never wants to know projection formulas. It
//	needs exactly three guarantees: longitudes are wrapped into the
//	window [wrap-360, wrap) before projecting, samples exactly on the
//	wrap meridian are nudged to its visible side, and inverse lookups
//	outside the projection's planar domain come back as NaN pairs
//	instead of errors (the extent scan skips NaN).
//
// Supported projections:
//
//	cyl    — plate carrée (equirectangular, standard parallel 0)
//	moll   — Mollweide equal-area
//	hammer — Hammer-Aitoff equal-area
//	hpx    — HEALPix
//	merc   — Mercator
//
// The planar scale uses radius 180/pi, so one planar unit spans one
// degree along the equator of the cylindrical projection.
//
// Core operations:
//
//	Get(name, lon0)      — registry lookup with lon0 normalization
//	Names()              — sorted registry names
//	WrapValues(lon, wrap) — map a longitude into [wrap-360, wrap)
//
// Errors:
//
//	ErrUnknownProjection — Get with a name outside the registry
//
// Forward and Inverse never fail; out-of-domain samples produce NaN.
package skycrs
