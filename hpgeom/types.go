// Package hpgeom defines core types, constants, and sentinel errors
// for HEALPix pixel indexing.
package hpgeom

import (
	"errors"
)

// Sentinel errors for hpgeom operations.
var (
	// ErrInvalidNSide indicates an nside that is not a power of two in [1, 2^29].
	ErrInvalidNSide = errors.New("hpgeom: nside must be a power of two in [1, 2^29]")
	// ErrInvalidPixel indicates a pixel id outside [0, 12*nside^2).
	ErrInvalidPixel = errors.New("hpgeom: pixel id out of range for nside")
	// ErrInvalidNPixel indicates an array length that is not 12*nside^2 for any valid nside.
	ErrInvalidNPixel = errors.New("hpgeom: pixel count is not a valid healpix map size")
	// ErrInvalidOrdering indicates an ordering other than Ring or Nest.
	ErrInvalidOrdering = errors.New("hpgeom: unknown pixel ordering")
)

// Unseen is the reserved sentinel marking "no data" in dense map
// arrays. It is distinct from NaN but consumers treat the two
// equivalently when masking.
const Unseen = -1.6375e30

// MaxOrder is the largest supported HEALPix order; nside = 2^order.
// Order 29 keeps 12*nside^2 within int64.
const MaxOrder = 29

// MaxNSide is the largest supported nside (2^MaxOrder).
const MaxNSide int64 = 1 << MaxOrder

// Ordering selects the HEALPix pixel numbering scheme.
type Ordering int

const (
	// Ring numbers pixels along iso-latitude rings from the north pole.
	Ring Ordering = iota
	// Nest numbers pixels hierarchically within the 12 base faces.
	Nest
)

// String returns the conventional lowercase scheme name.
func (o Ordering) String() string {
	switch o {
	case Ring:
		return "ring"
	case Nest:
		return "nest"
	default:
		return "unknown"
	}
}
