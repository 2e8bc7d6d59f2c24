package skymap

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/erykoff/skyproj/hpgeom"
	"github.com/erykoff/skyproj/hpxmap"
	"github.com/erykoff/skyproj/skycrs"
)

// Autoscale percentiles: the display range covers the central 95% of
// the visible values.
const (
	autoscaleLo = 0.025
	autoscaleHi = 0.975
)

// Mapper ties a projection to the current viewing extent and supplies
// the draw operations. Not safe for concurrent use.
type Mapper struct {
	proj skycrs.Projection
	wrap float64

	lonMin, lonMax float64
	latMin, latMax float64
}

// NewMapper looks up the named projection centered on lon0 and starts
// from the full-sky extent [lon0-180, lon0+180] x [-90, 90].
// Returns skycrs.ErrUnknownProjection for an unknown name.
// Complexity: O(1).
func NewMapper(projName string, lon0 float64) (*Mapper, error) {
	proj, err := skycrs.Get(projName, lon0)
	if err != nil {
		return nil, err
	}

	m := &Mapper{
		proj: proj,
		wrap: proj.LonWrap(),
	}
	m.SetExtent(proj.Lon0()-180, proj.Lon0()+180, -90, 90)

	return m, nil
}

// Projection returns the mapper's projection.
func (m *Mapper) Projection() skycrs.Projection {
	return m.proj
}

// Wrap returns the wrap angle implied by the central longitude.
func (m *Mapper) Wrap() float64 {
	return m.wrap
}

// SetExtent sets the current viewing window in degrees.
// Complexity: O(1).
func (m *Mapper) SetExtent(lonMin, lonMax, latMin, latMax float64) {
	m.lonMin, m.lonMax = lonMin, lonMax
	m.latMin, m.latMax = latMin, latMax
}

// Extent returns the current viewing window in degrees.
// Complexity: O(1).
func (m *Mapper) Extent() (lonMin, lonMax, latMin, latMax float64) {
	return m.lonMin, m.lonMax, m.latMin, m.latMax
}

// ComputeExtent finds a viewing window that encloses every projected
// sample with a small border. The latitude bound is the sample range
// cushioned by 5% and clipped to the poles. The longitude bounds step
// outward from the sample center in increments of one twentieth of
// the wrapped sample spread until the projected x of every sample is
// enclosed, or the bound reaches lon0 ± 180.
//
// Returns hpxmap.ErrNoValidPixels for empty input.
// Complexity: O(n) per step, bounded by the step count.
func (m *Mapper) ComputeExtent(lon, lat []float64) (hpxmap.LonLatWindow, error) {
	if len(lon) == 0 || len(lon) != len(lat) {
		return hpxmap.LonLatWindow{}, fmt.Errorf("%d samples: %w", len(lon), hpxmap.ErrNoValidPixels)
	}

	latRange := floats.Max(lat) - floats.Min(lat)
	latMin := math.Max(floats.Min(lat)-0.05*latRange, -90)
	latMax := math.Min(floats.Max(lat)+0.05*latRange, 90)

	x, _ := m.proj.Forward(lon, lat)

	lonWrapped := make([]float64, len(lon))
	for i, l := range lon {
		lonWrapped[i] = skycrs.WrapValues(l, 180)
	}
	lonMin0 := floats.Min(lonWrapped)
	lonMax0 := floats.Max(lonWrapped)
	lonStep := (lonMax0 - lonMin0) / 20
	lonCent := 0.5 * (lonMin0 + lonMax0)
	if lonStep == 0 {
		// Degenerate spread (all samples at one longitude): fall back
		// to a fixed one-degree step so the search still terminates.
		lonStep = 1
	}

	lon0 := m.proj.Lon0()

	// Walk each bound outward until no projected sample falls past
	// the bound's own projected edge.
	lonMin := lonCent - lonStep
	for !m.encloses(x, lonMin, latMin, latMax, true) && lonMin > lon0-180 {
		lonMin = math.Max(lonMin-lonStep, lon0-180)
	}
	lonMax := lonCent + lonStep
	for !m.encloses(x, lonMax, latMin, latMax, false) && lonMax < lon0+180 {
		lonMax = math.Min(lonMax+lonStep, lon0+180)
	}

	return hpxmap.LonLatWindow{LonMin: lonMin, LonMax: lonMax, LatMin: latMin, LatMax: latMax}, nil
}

// encloses reports whether the meridian at bound, spanning latMin to
// latMax, has every sample x on its inner side (right of it for the
// lower bound, left of it for the upper).
func (m *Mapper) encloses(x []float64, bound, latMin, latMax float64, lower bool) bool {
	ex, _ := m.proj.Forward([]float64{bound, bound}, []float64{latMin, latMax})
	edge := math.Min(ex[0], ex[1])
	if !lower {
		edge = math.Max(ex[0], ex[1])
	}

	for _, xv := range x {
		if lower && xv < edge {
			return false
		}
		if !lower && xv > edge {
			return false
		}
	}

	return true
}

// DrawHpxMap rasterizes a dense map for display. The window comes
// from explicit ranges when given, the estimated window of the map's
// valid pixels when zooming, or the current extent otherwise. With
// zoom enabled the mapper extent is tightened around the visible
// cells afterwards.
//
// Returns ErrNoVisibleData when every raster cell is masked, or the
// underlying hpgeom/hpxmap validation errors.
// Complexity: O(W*H).
func (m *Mapper) DrawHpxMap(hpxMap []float64, ordering hpgeom.Ordering, opts ...DrawOption) (*Raster, error) {
	cfg := defaultDrawConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	nside, err := hpgeom.NPixelToNSide(int64(len(hpxMap)))
	if err != nil {
		return nil, err
	}

	window, err := m.resolveWindow(cfg, func() (hpxmap.LonLatWindow, error) {
		var valid []int64
		for p, v := range hpxMap {
			if !hpxmap.IsUnseen(v) && !math.IsNaN(v) {
				valid = append(valid, int64(p))
			}
		}

		return hpxmap.PixelsWindow(nside, ordering, valid, m.wrap)
	})
	if err != nil {
		return nil, err
	}

	grid, err := hpxmap.RasterizeDense(hpxMap, ordering, window, cfg.xsize, cfg.aspect)
	if err != nil {
		return nil, err
	}

	return m.finishDraw(grid, window, cfg)
}

// DrawHpxPix rasterizes explicit pixel/value pairs for display, with
// the same window and autoscale behavior as DrawHpxMap.
//
// Returns hpxmap.ErrDuplicatePixels for repeated ids (before any
// resampling) and ErrNoVisibleData for an all-masked raster.
// Complexity: O(n log n + W*H log n).
func (m *Mapper) DrawHpxPix(nside int64, pix []int64, vals []float64, ordering hpgeom.Ordering, opts ...DrawOption) (*Raster, error) {
	cfg := defaultDrawConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	window, err := m.resolveWindow(cfg, func() (hpxmap.LonLatWindow, error) {
		return hpxmap.PixelsWindow(nside, ordering, pix, m.wrap)
	})
	if err != nil {
		return nil, err
	}

	grid, err := hpxmap.RasterizePairs(nside, pix, vals, ordering, window, cfg.xsize, cfg.aspect)
	if err != nil {
		return nil, err
	}

	return m.finishDraw(grid, window, cfg)
}

// DrawHspMap rasterizes a sparse map for display; the zoom window is
// estimated from the map's valid pixels.
// Complexity: O(W*H + n log n).
func (m *Mapper) DrawHspMap(sm *hpxmap.SparseMap, opts ...DrawOption) (*Raster, error) {
	cfg := defaultDrawConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	window, err := m.resolveWindow(cfg, func() (hpxmap.LonLatWindow, error) {
		return hpxmap.PixelsWindow(sm.NSide(), sm.Ordering(), sm.ValidPixels(), m.wrap)
	})
	if err != nil {
		return nil, err
	}

	grid, err := hpxmap.RasterizeSparse(sm, window, cfg.xsize, cfg.aspect)
	if err != nil {
		return nil, err
	}

	return m.finishDraw(grid, window, cfg)
}

// DrawHpxBin bins scattered samples into a dense map at the given
// resolution and draws it. The binned map is returned alongside the
// raster so callers can reuse it.
// Complexity: O(n + npix + W*H).
func (m *Mapper) DrawHpxBin(lon, lat, values []float64, nside int64, ordering hpgeom.Ordering, opts ...DrawOption) ([]float64, *Raster, error) {
	binned, err := hpxmap.Bin(nside, lon, lat, values, ordering)
	if err != nil {
		return nil, nil, err
	}

	raster, err := m.DrawHpxMap(binned, ordering, opts...)
	if err != nil {
		return nil, nil, err
	}

	return binned, raster, nil
}

// resolveWindow picks the rasterization window: explicit ranges win,
// then the data estimate when zooming, then the current extent. A
// partially explicit window fills its missing axis from the fallback.
func (m *Mapper) resolveWindow(cfg drawConfig, estimate func() (hpxmap.LonLatWindow, error)) (hpxmap.LonLatWindow, error) {
	if cfg.lonRange != nil && cfg.latRange != nil {
		return hpxmap.LonLatWindow{
			LonMin: cfg.lonRange[0], LonMax: cfg.lonRange[1],
			LatMin: cfg.latRange[0], LatMax: cfg.latRange[1],
		}, nil
	}

	var window hpxmap.LonLatWindow
	if cfg.zoom {
		est, err := estimate()
		if err != nil {
			return hpxmap.LonLatWindow{}, err
		}
		window = est
	} else {
		window = hpxmap.LonLatWindow{
			LonMin: math.Min(m.lonMin, m.lonMax), LonMax: math.Max(m.lonMin, m.lonMax),
			LatMin: m.latMin, LatMax: m.latMax,
		}
	}

	if cfg.lonRange != nil {
		window.LonMin, window.LonMax = cfg.lonRange[0], cfg.lonRange[1]
	}
	if cfg.latRange != nil {
		window.LatMin, window.LatMax = cfg.latRange[0], cfg.latRange[1]
	}

	return window, nil
}

// finishDraw applies the shared tail of every draw call: the value
// range (explicit or autoscaled) and the optional zoom of the mapper
// extent onto the visible cells.
func (m *Mapper) finishDraw(grid *hpxmap.RasterGrid, window hpxmap.LonLatWindow, cfg drawConfig) (*Raster, error) {
	vmin, vmax, err := m.valueRange(grid, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.zoom {
		lon, lat := visibleCenters(grid)
		if len(lon) == 0 {
			return nil, ErrNoVisibleData
		}
		ext, err := m.ComputeExtent(lon, lat)
		if err != nil {
			return nil, err
		}
		m.SetExtent(ext.LonMin, ext.LonMax, ext.LatMin, ext.LatMax)
	}

	return &Raster{Grid: grid, Window: window, VMin: vmin, VMax: vmax}, nil
}

// valueRange returns the explicit range or the autoscaled central-95%
// percentile range of the unmasked values, widening an equal pair by
// ±0.1 so flat maps still render.
func (m *Mapper) valueRange(grid *hpxmap.RasterGrid, cfg drawConfig) (vmin, vmax float64, err error) {
	if cfg.vmin != nil && cfg.vmax != nil {
		return *cfg.vmin, *cfg.vmax, nil
	}

	visible := make([]float64, 0, len(grid.Values()))
	for i, v := range grid.Values() {
		if !grid.Mask()[i] {
			visible = append(visible, v)
		}
	}
	if len(visible) == 0 {
		return 0, 0, ErrNoVisibleData
	}
	sort.Float64s(visible)

	vmin = stat.Quantile(autoscaleLo, stat.LinInterp, visible, nil)
	vmax = stat.Quantile(autoscaleHi, stat.LinInterp, visible, nil)
	if vmin == vmax {
		vmin -= 0.1
		vmax += 0.1
	}
	if cfg.vmin != nil {
		vmin = *cfg.vmin
	}
	if cfg.vmax != nil {
		vmax = *cfg.vmax
	}

	return vmin, vmax, nil
}

// visibleCenters collects the cell centers of every unmasked cell.
func visibleCenters(grid *hpxmap.RasterGrid) (lon, lat []float64) {
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			masked, err := grid.MaskedAt(r, c)
			if err != nil || masked {
				continue
			}
			lo, la, err := grid.CellCenter(r, c)
			if err != nil {
				continue
			}
			lon = append(lon, lo)
			lat = append(lat, la)
		}
	}

	return lon, lat
}
