// Package hpgeom provides HEALPix pixel indexing for the rest of the
// module: angle↔pixel conversion, pixel center synthesis, pixel-radius
// bounds and resolution arithmetic.
//
// What:
//
//	HEALPix divides the sphere into 12*nside² equal-area pixels, where
//	nside is a power of two. Pixels are numbered either in ring order
//	(iso-latitude rings from the north pole) or nested order (a
//	hierarchical quad-tree within the 12 base faces). This package
//	converts between (lon, lat) angles in degrees and pixel ids in
//	either ordering, and answers resolution questions (pixel counts,
//	maximum pixel radii) that the rasterizers and the zoom-window
//	estimator depend on.
//
// Why:
//
//	Every consumer in this module speaks degrees and flat []float64 /
//	[]int64 slices. Centralizing the conversion (and its validation)
//	here keeps the rasterizers free of angular bookkeeping and pins the
//	unseen sentinel in exactly one place.
//
// Core operations:
//
//	AngleToPixel(nside, lon, lat, ordering) — sample angles → pixel ids
//	PixelToAngle(nside, pix, ordering)      — pixel ids → center angles
//	MaxPixelRadius(nside)                   — center→boundary upper bound, degrees
//	NSideToNPixel / NPixelToNSide           — resolution arithmetic
//
// Conventions:
//
//	Longitudes may be any finite degree value (they wrap); latitudes
//	are clamped to [-90, 90] before conversion. Both directions use the
//	closed-form ring geometry; nested ids convert to and from ring
//	order through github.com/owlpinetech/healpix.
//
// Complexity:
//
//	All conversions are O(n) over the input slice with O(1) work per
//	element.
//
// Errors:
//
//	ErrInvalidNSide    — nside not a power of two in [1, 2^29]
//	ErrInvalidPixel    — pixel id outside [0, 12*nside²)
//	ErrInvalidNPixel   — array length is not a valid map size
//	ErrInvalidOrdering — ordering is neither Ring nor Nest
package hpgeom
