package hpxmap

import (
	"fmt"
	"math"
	"sort"

	"github.com/erykoff/skyproj/hpgeom"
)

// SparseMap holds pixel→value entries at a declared resolution and
// ordering. Pixels never set are invalid. The value kind fixes which
// mutators apply and how values are exposed to the resampler:
// float64 entries pass through (NaN and the unseen sentinel mask),
// boolean entries expose 0/1 with false acting as the sentinel, and
// wide-mask entries collapse through a WideMaskReducer.
type SparseMap struct {
	nside    int64
	npix     int64
	ordering hpgeom.Ordering
	kind     ValueKind
	reducer  WideMaskReducer
	floats   map[int64]float64
	bits     map[int64]uint64
}

// NewSparseMap creates an empty float64-valued sparse map.
// Returns hpgeom.ErrInvalidNSide for a bad resolution.
// Complexity: O(1).
func NewSparseMap(nside int64, ordering hpgeom.Ordering) (*SparseMap, error) {
	return newSparse(nside, ordering, Float64Values, nil)
}

// NewBoolSparseMap creates an empty boolean-valued sparse map.
// Stored flags are exposed as 0/1; false doubles as the sentinel, so
// only true-valued pixels count as valid.
// Complexity: O(1).
func NewBoolSparseMap(nside int64, ordering hpgeom.Ordering) (*SparseMap, error) {
	return newSparse(nside, ordering, BoolValues, nil)
}

// NewWideMaskSparseMap creates an empty wide-mask sparse map whose
// stored bitmasks are collapsed by reducer. A nil reducer uses
// AnyBitSet.
// Complexity: O(1).
func NewWideMaskSparseMap(nside int64, ordering hpgeom.Ordering, reducer WideMaskReducer) (*SparseMap, error) {
	if reducer == nil {
		reducer = AnyBitSet
	}

	return newSparse(nside, ordering, WideMaskValues, reducer)
}

func newSparse(nside int64, ordering hpgeom.Ordering, kind ValueKind, reducer WideMaskReducer) (*SparseMap, error) {
	npix, err := hpgeom.NSideToNPixel(nside)
	if err != nil {
		return nil, err
	}
	sm := &SparseMap{
		nside:    nside,
		npix:     npix,
		ordering: ordering,
		kind:     kind,
		reducer:  reducer,
	}
	if kind == WideMaskValues {
		sm.bits = make(map[int64]uint64)
	} else {
		sm.floats = make(map[int64]float64)
	}

	return sm, nil
}

// NSide returns the map resolution.
func (sm *SparseMap) NSide() int64 {
	return sm.nside
}

// Ordering returns the pixel numbering scheme.
func (sm *SparseMap) Ordering() hpgeom.Ordering {
	return sm.ordering
}

// Kind returns the stored value kind.
func (sm *SparseMap) Kind() ValueKind {
	return sm.kind
}

// Len returns the number of stored pixels (valid or not).
// Complexity: O(1).
func (sm *SparseMap) Len() int {
	if sm.kind == WideMaskValues {
		return len(sm.bits)
	}

	return len(sm.floats)
}

// checkPixel validates a pixel id against the map resolution.
func (sm *SparseMap) checkPixel(pix int64) error {
	if pix < 0 || pix >= sm.npix {
		return fmt.Errorf("pixel %d with nside %d: %w", pix, sm.nside, hpgeom.ErrInvalidPixel)
	}

	return nil
}

// Set stores a float64 value at pix.
// Returns ErrWrongValueKind unless the map holds Float64Values, and
// hpgeom.ErrInvalidPixel for an out-of-range id.
// Complexity: O(1).
func (sm *SparseMap) Set(pix int64, v float64) error {
	if sm.kind != Float64Values {
		return fmt.Errorf("Set on %s map: %w", sm.kind, ErrWrongValueKind)
	}
	if err := sm.checkPixel(pix); err != nil {
		return err
	}
	sm.floats[pix] = v

	return nil
}

// SetBool stores a coverage flag at pix.
// Returns ErrWrongValueKind unless the map holds BoolValues.
// Complexity: O(1).
func (sm *SparseMap) SetBool(pix int64, v bool) error {
	if sm.kind != BoolValues {
		return fmt.Errorf("SetBool on %s map: %w", sm.kind, ErrWrongValueKind)
	}
	if err := sm.checkPixel(pix); err != nil {
		return err
	}
	if v {
		sm.floats[pix] = 1
	} else {
		sm.floats[pix] = 0
	}

	return nil
}

// SetBits stores a wide-mask bit pattern at pix.
// Returns ErrWrongValueKind unless the map holds WideMaskValues.
// Complexity: O(1).
func (sm *SparseMap) SetBits(pix int64, bits uint64) error {
	if sm.kind != WideMaskValues {
		return fmt.Errorf("SetBits on %s map: %w", sm.kind, ErrWrongValueKind)
	}
	if err := sm.checkPixel(pix); err != nil {
		return err
	}
	sm.bits[pix] = bits

	return nil
}

// lookup resolves the exposed value at pix. ok=false means the cell
// must be masked: the pixel is unset, carries a sentinel, or its
// wide-mask reduction rejected it.
func (sm *SparseMap) lookup(pix int64) (float64, bool) {
	switch sm.kind {
	case WideMaskValues:
		bits, present := sm.bits[pix]
		if !present {
			return 0, false
		}

		return sm.reducer(bits)
	case BoolValues:
		v, present := sm.floats[pix]
		if !present || v == 0 {
			return 0, false
		}

		return 1, true
	default:
		v, present := sm.floats[pix]
		if !present || math.IsNaN(v) || IsUnseen(v) {
			return v, false
		}

		return v, true
	}
}

// ValidPixels returns the sorted ids of all pixels whose exposed
// value is valid (set, non-sentinel, and accepted by the reducer).
// Complexity: O(n log n).
func (sm *SparseMap) ValidPixels() []int64 {
	pixels := make([]int64, 0, sm.Len())
	if sm.kind == WideMaskValues {
		for p := range sm.bits {
			if _, ok := sm.reducer(sm.bits[p]); ok {
				pixels = append(pixels, p)
			}
		}
	} else {
		for p := range sm.floats {
			if _, ok := sm.lookup(p); ok {
				pixels = append(pixels, p)
			}
		}
	}
	sort.Slice(pixels, func(i, j int) bool { return pixels[i] < pixels[j] })

	return pixels
}

// ValidValues returns the exposed values aligned with ValidPixels.
// Complexity: O(n log n).
func (sm *SparseMap) ValidValues() []float64 {
	pixels := sm.ValidPixels()
	values := make([]float64, len(pixels))
	for i, p := range pixels {
		values[i], _ = sm.lookup(p)
	}

	return values
}
