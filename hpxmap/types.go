// Package hpxmap defines core types, options, and sentinel errors for
// HEALPix map rasterization, binning and zoom-window estimation.
package hpxmap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for hpxmap operations.
var (
	// ErrNoValidPixels indicates an empty pixel set where a non-empty one is required.
	ErrNoValidPixels = errors.New("hpxmap: no valid pixels supplied")
	// ErrDuplicatePixels indicates that an explicit pixel id slice contains repeats.
	ErrDuplicatePixels = errors.New("hpxmap: pixel ids must be unique")
	// ErrSizeMismatch indicates paired slices of different lengths.
	ErrSizeMismatch = errors.New("hpxmap: paired slices must have equal length")
	// ErrInvalidRasterSize indicates raster dimensions too small to form cells.
	ErrInvalidRasterSize = errors.New("hpxmap: raster needs xsize >= 2 and round(aspect*xsize) >= 2")
	// ErrIndexOutOfBounds indicates a raster cell index outside the grid.
	ErrIndexOutOfBounds = errors.New("hpxmap: raster index out of bounds")
	// ErrWrongValueKind indicates a sparse-map mutation that does not match its value kind.
	ErrWrongValueKind = errors.New("hpxmap: operation does not match the map's value kind")
)

// rasterErrorf wraps an underlying error with RasterGrid method context.
func rasterErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("RasterGrid.%s(%d,%d): %w", method, row, col, err)
}

// SourceKind tags the resampling strategy used for a pixel source.
type SourceKind int

const (
	// SourceSparse resamples a SparseMap by pixel lookup.
	SourceSparse SourceKind = iota
	// SourceDense resamples a dense array indexed by pixel id.
	SourceDense
	// SourceExplicitPairs resamples caller-provided pixel/value slices.
	SourceExplicitPairs
)

// String returns a short tag for diagnostics.
func (k SourceKind) String() string {
	switch k {
	case SourceSparse:
		return "sparse"
	case SourceDense:
		return "dense"
	case SourceExplicitPairs:
		return "explicit-pairs"
	default:
		return "unknown"
	}
}

// ValueKind describes what a SparseMap stores per pixel.
type ValueKind int

const (
	// Float64Values stores one float64 per pixel.
	Float64Values ValueKind = iota
	// BoolValues stores a coverage flag per pixel, exposed as 0/1.
	BoolValues
	// WideMaskValues stores a multi-bit bitmask per pixel, exposed
	// through a WideMaskReducer.
	WideMaskValues
)

// String returns a short tag for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case Float64Values:
		return "float64"
	case BoolValues:
		return "bool"
	case WideMaskValues:
		return "widemask"
	default:
		return "unknown"
	}
}

// WideMaskReducer collapses a stored multi-bit value into the exposed
// cell value. Returning ok=false masks the cell. New bit encodings
// plug in here without touching the resampler.
type WideMaskReducer func(bits uint64) (value float64, ok bool)

// AnyBitSet is the default WideMaskReducer: any set bit exposes 1,
// all-clear bits mask the cell.
func AnyBitSet(bits uint64) (float64, bool) {
	if bits != 0 {
		return 1, true
	}

	return 0, false
}

// LonLatWindow is a rectangular sky window in degrees.
// Latitudes stay strictly inside ±90; the longitude span never
// exceeds 360 but may equal it (full sky, up to a seam epsilon).
type LonLatWindow struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// Width returns the longitude span in degrees.
// Complexity: O(1).
func (w LonLatWindow) Width() float64 {
	return w.LonMax - w.LonMin
}

// Height returns the latitude span in degrees.
// Complexity: O(1).
func (w LonLatWindow) Height() float64 {
	return w.LatMax - w.LatMin
}

// Aspect returns |Height/Width|, the natural raster aspect for the
// window. Degenerate windows return 1.
// Complexity: O(1).
func (w LonLatWindow) Aspect() float64 {
	width := math.Abs(w.Width())
	if width == 0 {
		return 1
	}

	return math.Abs(w.Height()) / width
}

// RasterGrid is the resampling result: a row-major grid of cell
// values with a validity mask, between regular lon/lat mesh edges.
// rows and cols count cells; the edge slices are one longer on each
// axis. A true mask entry marks a cell with no usable source data.
type RasterGrid struct {
	lonEdges []float64 // mesh longitudes, length cols+1
	latEdges []float64 // mesh latitudes, length rows+1
	values   []float64 // flat backing storage, length rows*cols
	mask     []bool    // flat validity mask, length rows*cols
	rows     int
	cols     int
	source   SourceKind
}

// newRasterGrid allocates the cell grid between the given mesh edges.
func newRasterGrid(lonEdges, latEdges []float64) *RasterGrid {
	rows := len(latEdges) - 1
	cols := len(lonEdges) - 1

	return &RasterGrid{
		lonEdges: lonEdges,
		latEdges: latEdges,
		values:   make([]float64, rows*cols),
		mask:     make([]bool, rows*cols),
		rows:     rows,
		cols:     cols,
	}
}

// Rows returns the number of cell rows (latitude direction).
// Complexity: O(1).
func (g *RasterGrid) Rows() int {
	return g.rows
}

// Cols returns the number of cell columns (longitude direction).
// Complexity: O(1).
func (g *RasterGrid) Cols() int {
	return g.cols
}

// Source returns the resampling strategy that produced the grid.
// Complexity: O(1).
func (g *RasterGrid) Source() SourceKind {
	return g.source
}

// LonEdges returns the longitude mesh edges (length Cols()+1).
// The slice is the grid's backing storage; treat it as read-only.
func (g *RasterGrid) LonEdges() []float64 {
	return g.lonEdges
}

// LatEdges returns the latitude mesh edges (length Rows()+1).
// The slice is the grid's backing storage; treat it as read-only.
func (g *RasterGrid) LatEdges() []float64 {
	return g.latEdges
}

// Values returns the flat row-major cell values (length Rows*Cols).
// The slice is the grid's backing storage; treat it as read-only.
func (g *RasterGrid) Values() []float64 {
	return g.values
}

// Mask returns the flat row-major validity mask, true where the cell
// has no usable data. Same backing-storage caveat as Values.
func (g *RasterGrid) Mask() []bool {
	return g.mask
}

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds.
// Complexity: O(1).
func (g *RasterGrid) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.rows {
		return 0, rasterErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= g.cols {
		return 0, rasterErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*g.cols + col, nil
}

// At retrieves the cell value at (row, col).
// Complexity: O(1).
func (g *RasterGrid) At(row, col int) (float64, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.values[idx], nil
}

// MaskedAt reports whether the cell at (row, col) is masked.
// Complexity: O(1).
func (g *RasterGrid) MaskedAt(row, col int) (bool, error) {
	idx, err := g.indexOf("MaskedAt", row, col)
	if err != nil {
		return false, err
	}

	return g.mask[idx], nil
}

// CellCenter returns the lon/lat midpoint of the cell at (row, col),
// the exact position its value was sampled at.
// Complexity: O(1).
func (g *RasterGrid) CellCenter(row, col int) (lon, lat float64, err error) {
	if _, err = g.indexOf("CellCenter", row, col); err != nil {
		return 0, 0, err
	}

	return 0.5 * (g.lonEdges[col] + g.lonEdges[col+1]), 0.5 * (g.latEdges[row] + g.latEdges[row+1]), nil
}
