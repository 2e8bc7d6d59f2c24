package hpxmap

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/erykoff/skyproj/hpgeom"
)

// IsUnseen reports whether v equals the unseen sentinel within the
// usual relative tolerance (the sentinel's magnitude makes absolute
// comparison useless).
// Complexity: O(1).
func IsUnseen(v float64) bool {
	return math.Abs(v-hpgeom.Unseen) <= 1e-8+1e-5*math.Abs(hpgeom.Unseen)
}

// buildMesh allocates the raster scaffolding for a window: the mesh
// edges and the flattened midpoint sample centers, row-major to match
// the grid's value layout.
func buildMesh(window LonLatWindow, xsize int, aspect float64) (grid *RasterGrid, lon, lat []float64, err error) {
	ysize := int(math.Round(aspect * float64(xsize)))
	if xsize < 2 || ysize < 2 {
		return nil, nil, nil, fmt.Errorf("xsize %d, aspect %g: %w", xsize, aspect, ErrInvalidRasterSize)
	}

	lonEdges := floats.Span(make([]float64, xsize), window.LonMin, window.LonMax)
	latEdges := floats.Span(make([]float64, ysize), window.LatMin, window.LatMax)
	grid = newRasterGrid(lonEdges, latEdges)

	lon = make([]float64, grid.rows*grid.cols)
	lat = make([]float64, grid.rows*grid.cols)
	for r := 0; r < grid.rows; r++ {
		midLat := 0.5 * (latEdges[r] + latEdges[r+1])
		for c := 0; c < grid.cols; c++ {
			i := r*grid.cols + c
			lon[i] = 0.5 * (lonEdges[c] + lonEdges[c+1])
			lat[i] = midLat
		}
	}

	return grid, lon, lat, nil
}

// RasterizeDense resamples a dense map (one value per pixel id, with
// the unseen sentinel or NaN marking gaps) onto a regular raster over
// window. The resolution is recovered from len(m). Cells whose source
// value is the sentinel or NaN are masked.
//
// Returns hpgeom.ErrInvalidNPixel if len(m) is not a valid map size,
// or ErrInvalidRasterSize for degenerate raster dimensions.
// Complexity: O(W*H).
func RasterizeDense(m []float64, ordering hpgeom.Ordering, window LonLatWindow, xsize int, aspect float64) (*RasterGrid, error) {
	nside, err := hpgeom.NPixelToNSide(int64(len(m)))
	if err != nil {
		return nil, err
	}
	grid, lon, lat, err := buildMesh(window, xsize, aspect)
	if err != nil {
		return nil, err
	}
	pix, err := hpgeom.AngleToPixel(nside, lon, lat, ordering)
	if err != nil {
		return nil, err
	}

	grid.source = SourceDense
	for i, p := range pix {
		v := m[p]
		grid.values[i] = v
		if IsUnseen(v) || math.IsNaN(v) {
			grid.mask[i] = true
		}
	}

	return grid, nil
}

// RasterizeSparse resamples a SparseMap onto a regular raster over
// window. Unset pixels, sentinel values, false coverage flags and
// reducer-rejected wide masks all become masked cells.
//
// Returns ErrInvalidRasterSize for degenerate raster dimensions.
// Complexity: O(W*H).
func RasterizeSparse(sm *SparseMap, window LonLatWindow, xsize int, aspect float64) (*RasterGrid, error) {
	grid, lon, lat, err := buildMesh(window, xsize, aspect)
	if err != nil {
		return nil, err
	}
	pix, err := hpgeom.AngleToPixel(sm.nside, lon, lat, sm.ordering)
	if err != nil {
		return nil, err
	}

	grid.source = SourceSparse
	for i, p := range pix {
		v, ok := sm.lookup(p)
		grid.values[i] = v
		if !ok {
			grid.values[i] = hpgeom.Unseen
			grid.mask[i] = true
		}
	}

	return grid, nil
}

// RasterizePairs resamples explicit pixel/value pairs onto a regular
// raster over window. The pixel ids must be unique but need not be
// sorted: the resolver sorts them once, binary-searches every raster
// sample's pixel id, and accepts a match only on exact id equality.
// A search landing one past the end is clamped to the last entry so
// indexing stays safe; the equality test then rejects it like any
// other miss. Raster cells whose pixel id is absent from pix are
// masked.
//
// Returns ErrSizeMismatch if len(pix) != len(vals), ErrNoValidPixels
// for empty input, and ErrDuplicatePixels (before any resampling) if
// ids repeat.
// Complexity: O(n log n + W*H log n).
func RasterizePairs(nside int64, pix []int64, vals []float64, ordering hpgeom.Ordering, window LonLatWindow, xsize int, aspect float64) (*RasterGrid, error) {
	if len(pix) != len(vals) {
		return nil, fmt.Errorf("%d pixels, %d values: %w", len(pix), len(vals), ErrSizeMismatch)
	}
	if len(pix) == 0 {
		return nil, ErrNoValidPixels
	}

	// Argsort once; the sorted view backs both the uniqueness check
	// and the per-sample binary search.
	order := make([]int, len(pix))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return pix[order[i]] < pix[order[j]] })
	sorted := make([]int64, len(pix))
	for i, idx := range order {
		sorted[i] = pix[idx]
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("pixel %d repeats: %w", sorted[i], ErrDuplicatePixels)
		}
	}

	grid, lon, lat, err := buildMesh(window, xsize, aspect)
	if err != nil {
		return nil, err
	}
	qpix, err := hpgeom.AngleToPixel(nside, lon, lat, ordering)
	if err != nil {
		return nil, err
	}

	grid.source = SourceExplicitPairs
	for i, q := range qpix {
		at := sort.Search(len(sorted), func(j int) bool { return sorted[j] >= q })
		if at == len(sorted) {
			at--
		}
		if sorted[at] == q {
			grid.values[i] = vals[order[at]]
		} else {
			grid.values[i] = hpgeom.Unseen
			grid.mask[i] = true
		}
	}

	return grid, nil
}
