package skygrid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/erykoff/skyproj/geom"
	"github.com/erykoff/skyproj/skycrs"
)

const degToRad = math.Pi / 180

// bboxSlack expands the viewport box before crossing detection so
// floating-point boundary misses still register as ticks.
const bboxSlack = 1 + 2e-10

// deltaCutCyl is the default discontinuity threshold, in planar
// units, for the cylindrical projection.
const deltaCutCyl = 80.0

// Engine generates the graticule for one projection: gridline
// polylines in projected coordinates plus per-edge tick crossings,
// recomputed whenever the viewport changes and cached otherwise.
//
// An Engine is not safe for concurrent use; confine each instance to
// one rendering goroutine.
type Engine struct {
	proj skycrs.Projection
	opts Options

	wrapAngle      float64
	deltaCut       float64
	includeLastLon bool

	info      *GridInfo
	oldLimits [4]float64
}

// New builds a graticule engine for proj. Defaults derive from the
// projection: the wrap angle from its central longitude, the delta
// cut from its name and radius (80 for "cyl", half the radius
// otherwise). Options override any of them.
// Complexity: O(1).
func New(proj skycrs.Projection, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	wrap := proj.LonWrap()
	if o.Wrap != nil {
		wrap = *o.Wrap
	}
	deltaCut := o.DeltaCut
	if deltaCut == 0 {
		if proj.Name() == "cyl" {
			deltaCut = deltaCutCyl
		} else {
			deltaCut = 0.5 * proj.Radius()
		}
	}

	return &Engine{
		proj:           proj,
		opts:           o,
		wrapAngle:      wrap,
		deltaCut:       deltaCut,
		includeLastLon: wrap == 180 && !o.FullCircle,
	}
}

// Wrap returns the engine's wrap angle in degrees.
func (e *Engine) Wrap() float64 {
	return e.wrapAngle
}

// DeltaCut returns the discontinuity threshold in planar units.
func (e *Engine) DeltaCut() float64 {
	return e.deltaCut
}

// Invalidate drops the viewport memo, forcing the next UpdateLimits
// to recompute even for identical bounds.
// Complexity: O(1).
func (e *Engine) Invalidate() {
	e.info = nil
	e.oldLimits = [4]float64{}
}

// UpdateLimits recomputes the graticule for the viewport spanned by
// (x1, y1) and (x2, y2) in projected coordinates. A call with the
// exact same four bounds as the previous successful call is a no-op:
// the cached GridInfo stays valid until the viewport actually moves.
// Complexity: O(mesh + levels*samples).
func (e *Engine) UpdateLimits(x1, x2, y1, y2 float64) {
	limits := [4]float64{x1, x2, y1, y2}
	if e.info != nil && limits == e.oldLimits {
		return
	}

	e.info = e.computeGridInfo(x1, x2, y1, y2)
	e.oldLimits = limits
}

// Gridlines returns the cut gridline polylines for the selected axis
// family, longitude lines first when both are requested.
// Returns ErrNotInitialized before the first UpdateLimits, or
// ErrInvalidAxis for a selector outside the enum.
// Complexity: O(k) for k lines.
func (e *Engine) Gridlines(axis Axis) ([]GridLine, error) {
	if e.info == nil {
		return nil, ErrNotInitialized
	}

	switch axis {
	case AxisLon:
		return append([]GridLine(nil), e.info.LonLines...), nil
	case AxisLat:
		return append([]GridLine(nil), e.info.LatLines...), nil
	case AxisBoth:
		out := make([]GridLine, 0, len(e.info.LonLines)+len(e.info.LatLines))
		out = append(out, e.info.LonLines...)
		out = append(out, e.info.LatLines...)

		return out, nil
	default:
		return nil, fmt.Errorf("axis %d: %w", int(axis), ErrInvalidAxis)
	}
}

// Ticks returns one axis family's crossings on the named viewport
// edge, each keyed by its gridline level.
// Returns ErrNotInitialized before the first UpdateLimits,
// ErrInvalidAxis for AxisBoth or an unknown axis, or ErrInvalidEdge.
// Complexity: O(1).
func (e *Engine) Ticks(axis Axis, edge Edge) ([]TickCrossing, error) {
	if e.info == nil {
		return nil, ErrNotInitialized
	}

	switch axis {
	case AxisLon:
		return e.info.LonTicks.edge(edge)
	case AxisLat:
		return e.info.LatTicks.edge(edge)
	default:
		return nil, fmt.Errorf("axis %s: %w", axis, ErrInvalidAxis)
	}
}

// GridInfo returns the cached aggregate result, or ErrNotInitialized
// before the first UpdateLimits.
func (e *Engine) GridInfo() (*GridInfo, error) {
	if e.info == nil {
		return nil, ErrNotInitialized
	}

	return e.info, nil
}

// computeGridInfo runs the full pipeline for one viewport: extent
// scan, line counts, level selection, polyline generation, jump
// cutting, and tick extraction.
func (e *Engine) computeGridInfo(x1, x2, y1, y2 float64) *GridInfo {
	info := &GridInfo{}

	lonMin, lonMax, latMin, latMax, ok := e.findExtremes(x1, x2, y1, y2)
	info.LonLim = [2]float64{lonMin, lonMax}
	info.LatLim = [2]float64{latMin, latMax}
	if !ok {
		// The viewport sees no part of the sphere; an empty graticule
		// keeps rendering resilient.
		return info
	}

	nLon, nLat := e.gridCounts(lonMin, lonMax, latMin, latMax)
	lonLevels, _ := DegreeLocator{NBins: nLon, IncludeLast: e.includeLastLon}.Levels(lonMin, lonMax)
	latLevels, _ := DegreeLocator{NBins: nLat, IncludeLast: true}.Levels(latMin, latMax)

	box := geom.ExpandedRect(geom.RectFromLimits(x1, x2, y1, y2), bboxSlack)

	for _, level := range lonLevels {
		lats := floats.Span(make([]float64, e.opts.NSamples), latMin, latMax)
		lons := constant(level, e.opts.NSamples)
		xs, ys := e.proj.Forward(lons, lats)
		xs, ys = CutGridLineJumps(xs, ys, e.deltaCut)
		info.LonLines = append(info.LonLines, GridLine{Level: level, XS: xs, YS: ys})
		fileTicks(&info.LonTicks, level, geom.FindLineBoxCrossings(xs, ys, box))
	}
	for _, level := range latLevels {
		lons := floats.Span(make([]float64, e.opts.NSamples), lonMin, lonMax)
		lats := constant(level, e.opts.NSamples)
		xs, ys := e.proj.Forward(lons, lats)
		xs, ys = CutGridLineJumps(xs, ys, e.deltaCut)
		info.LatLines = append(info.LatLines, GridLine{Level: level, XS: xs, YS: ys})
		fileTicks(&info.LatTicks, level, geom.FindLineBoxCrossings(xs, ys, box))
	}

	return info
}

// findExtremes scans an inverse-transformed mesh over the viewport
// for the extreme visible spherical bounds: wrapped longitudes and
// latitudes, NaN samples skipped, each axis padded by one mesh step,
// latitudes clamped to the poles. ok is false when no mesh sample
// lands on the sphere.
func (e *Engine) findExtremes(x1, x2, y1, y2 float64) (lonMin, lonMax, latMin, latMax float64, ok bool) {
	nx, ny := e.opts.MeshNX, e.opts.MeshNY
	xs := floats.Span(make([]float64, nx), x1, x2)
	ys := floats.Span(make([]float64, ny), y1, y2)

	mx := make([]float64, 0, nx*ny)
	my := make([]float64, 0, nx*ny)
	for _, y := range ys {
		for _, x := range xs {
			mx = append(mx, x)
			my = append(my, y)
		}
	}
	lon, lat := e.proj.Inverse(mx, my)

	lonMin, lonMax = math.Inf(1), math.Inf(-1)
	latMin, latMax = math.Inf(1), math.Inf(-1)
	for i := range lon {
		if math.IsNaN(lon[i]) || math.IsNaN(lat[i]) {
			continue
		}
		ok = true
		l := skycrs.WrapValues(lon[i], e.wrapAngle)
		lonMin = math.Min(lonMin, l)
		lonMax = math.Max(lonMax, l)
		latMin = math.Min(latMin, lat[i])
		latMax = math.Max(latMax, lat[i])
	}
	if !ok {
		return 0, 0, 0, 0, false
	}

	dLon := (lonMax - lonMin) / float64(nx)
	dLat := (latMax - latMin) / float64(ny)
	lonMin -= dLon
	lonMax += dLon
	latMin = math.Max(latMin-dLat, -90)
	latMax = math.Min(latMax+dLat, 90)

	return lonMin, lonMax, latMin, latMax, true
}

// gridCounts picks the gridline counts for the visible extent. The
// latitude count is fixed (6 unless overridden); the longitude count
// scales it by the visible width/height ratio, corrected by
// cos(mean latitude) for meridian convergence and clamped to
// [1/3, 5/3].
func (e *Engine) gridCounts(lonMin, lonMax, latMin, latMax float64) (nLon, nLat int) {
	nLat = e.opts.NLatLines
	if nLat < 1 {
		nLat = 6
	}

	if e.opts.NLonLines > 0 {
		return e.opts.NLonLines, nLat
	}

	latScale := math.Cos(0.5 * (latMin + latMax) * degToRad)
	ratio := math.Abs(lonMax-lonMin) * latScale / (latMax - latMin)
	ratio = math.Min(math.Max(ratio, 1.0/3.0), 5.0/3.0)

	return int(math.Ceil(ratio * float64(nLat))), nLat
}

// CutGridLineJumps splits a polyline at projection discontinuities:
// wherever the planar distance between consecutive points exceeds
// threshold, one NaN gap marker is inserted between them so renderers
// do not draw a spurious connecting segment. A polyline with no
// over-threshold jumps is returned unchanged.
// Complexity: O(n).
func CutGridLineJumps(xs, ys []float64, threshold float64) ([]float64, []float64) {
	var jumps []int
	for i := 0; i+1 < len(xs); i++ {
		if math.Hypot(xs[i+1]-xs[i], ys[i+1]-ys[i]) > threshold {
			jumps = append(jumps, i)
		}
	}
	if len(jumps) == 0 {
		return xs, ys
	}

	outX := make([]float64, 0, len(xs)+len(jumps))
	outY := make([]float64, 0, len(ys)+len(jumps))
	next := 0
	for i := range xs {
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
		if next < len(jumps) && jumps[next] == i {
			outX = append(outX, math.NaN())
			outY = append(outY, math.NaN())
			next++
		}
	}

	return outX, outY
}

// constant returns a slice of n copies of v.
func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// fileTicks appends one line's box crossings to the axis tick set,
// keyed by the line's level.
func fileTicks(ts *TickSet, level float64, bc geom.BoxCrossings) {
	for _, c := range bc.Left {
		ts.Left = append(ts.Left, TickCrossing{Level: level, Pos: c.Pos, Angle: c.Angle})
	}
	for _, c := range bc.Right {
		ts.Right = append(ts.Right, TickCrossing{Level: level, Pos: c.Pos, Angle: c.Angle})
	}
	for _, c := range bc.Bottom {
		ts.Bottom = append(ts.Bottom, TickCrossing{Level: level, Pos: c.Pos, Angle: c.Angle})
	}
	for _, c := range bc.Top {
		ts.Top = append(ts.Top, TickCrossing{Level: level, Pos: c.Pos, Angle: c.Angle})
	}
}
