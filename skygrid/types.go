// Package skygrid defines the graticule engine's result types,
// functional options, and sentinel errors.
package skygrid

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
)

// Sentinel errors for skygrid operations.
var (
	// ErrNotInitialized indicates an accessor call before the first successful UpdateLimits.
	ErrNotInitialized = errors.New("skygrid: no viewport set, call UpdateLimits first")
	// ErrInvalidAxis indicates an Axis selector outside the enum.
	ErrInvalidAxis = errors.New("skygrid: unknown axis selector")
	// ErrInvalidEdge indicates an Edge selector outside the enum.
	ErrInvalidEdge = errors.New("skygrid: unknown edge selector")
)

// Axis selects which gridline families an accessor returns.
type Axis int

const (
	// AxisBoth selects longitude lines followed by latitude lines.
	AxisBoth Axis = iota
	// AxisLon selects constant-longitude lines (meridians).
	AxisLon
	// AxisLat selects constant-latitude lines (parallels).
	AxisLat
)

// String returns a short tag for diagnostics.
func (a Axis) String() string {
	switch a {
	case AxisBoth:
		return "both"
	case AxisLon:
		return "lon"
	case AxisLat:
		return "lat"
	default:
		return "unknown"
	}
}

// Edge names one viewport boundary for tick grouping.
type Edge int

const (
	// EdgeLeft is the boundary at minimum x.
	EdgeLeft Edge = iota
	// EdgeRight is the boundary at maximum x.
	EdgeRight
	// EdgeBottom is the boundary at minimum y.
	EdgeBottom
	// EdgeTop is the boundary at maximum y.
	EdgeTop
)

// String returns the viewport-side name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

// GridLine is one constant-longitude or constant-latitude curve in
// projected coordinates. Level is the spherical coordinate the line
// holds fixed, in degrees. XS and YS carry NaN gap markers where the
// curve jumps across a projection discontinuity, so renderers must
// break the stroke at NaN instead of connecting through it.
type GridLine struct {
	Level float64
	XS    []float64
	YS    []float64
}

// TickCrossing is one gridline/viewport-boundary intersection: the
// level the line represents (the eventual label key), the planar
// crossing position, and the crossing direction in degrees
// (0 = moving toward +x).
type TickCrossing struct {
	Level float64
	Pos   r2.Point
	Angle float64
}

// TickSet groups one axis family's crossings per viewport edge.
type TickSet struct {
	Left   []TickCrossing
	Right  []TickCrossing
	Bottom []TickCrossing
	Top    []TickCrossing
}

// edge returns the named edge's crossings.
func (ts *TickSet) edge(e Edge) ([]TickCrossing, error) {
	switch e {
	case EdgeLeft:
		return ts.Left, nil
	case EdgeRight:
		return ts.Right, nil
	case EdgeBottom:
		return ts.Bottom, nil
	case EdgeTop:
		return ts.Top, nil
	default:
		return nil, fmt.Errorf("edge %d: %w", int(e), ErrInvalidEdge)
	}
}

// GridInfo is the aggregate graticule for one viewport state: the
// extreme spherical bounds visible, the cut gridlines per axis, and
// the per-edge tick crossings per axis. The engine caches one
// GridInfo and replaces it whenever the viewport limits change.
type GridInfo struct {
	LonLim [2]float64
	LatLim [2]float64

	LonLines []GridLine
	LatLines []GridLine

	LonTicks TickSet
	LatTicks TickSet
}

// Options configures a graticule engine. Zero values mean "derive the
// default": the wrap angle and delta cut come from the projection,
// line counts from the visible extent.
type Options struct {
	// Wrap overrides the projection's wrap angle.
	Wrap *float64
	// NLonLines fixes the longitude gridline count; 0 selects it
	// automatically from the visible aspect ratio.
	NLonLines int
	// NLatLines fixes the latitude gridline count; 0 means 6.
	NLatLines int
	// DeltaCut is the planar jump distance treated as a projection
	// discontinuity; 0 derives it from the projection (80 for the
	// cylindrical projection, half the radius otherwise).
	DeltaCut float64
	// FullCircle marks projections whose seam meridians coincide, so
	// the duplicate last longitude line is dropped.
	FullCircle bool
	// NSamples is the number of points per gridline polyline.
	NSamples int
	// MeshNX and MeshNY set the inverse-transform mesh used to find
	// the extreme visible spherical bounds.
	MeshNX int
	MeshNY int
}

// DefaultOptions returns the engine defaults: automatic wrap, counts
// and delta cut, 100 samples per line, and a 20x20 extent mesh.
func DefaultOptions() Options {
	return Options{
		NLatLines: 6,
		NSamples:  100,
		MeshNX:    20,
		MeshNY:    20,
	}
}

// Option mutates Options during engine construction.
type Option func(*Options)

// WithWrap overrides the wrap angle in degrees.
func WithWrap(wrap float64) Option {
	return func(o *Options) { o.Wrap = &wrap }
}

// WithNLonLines fixes the longitude gridline count.
// Panics if n < 1 (programmer error).
func WithNLonLines(n int) Option {
	if n < 1 {
		panic("skygrid: WithNLonLines requires n >= 1")
	}

	return func(o *Options) { o.NLonLines = n }
}

// WithNLatLines fixes the latitude gridline count.
// Panics if n < 1 (programmer error).
func WithNLatLines(n int) Option {
	if n < 1 {
		panic("skygrid: WithNLatLines requires n >= 1")
	}

	return func(o *Options) { o.NLatLines = n }
}

// WithDeltaCut overrides the discontinuity threshold in planar units.
// Panics if d <= 0 (programmer error).
func WithDeltaCut(d float64) Option {
	if d <= 0 {
		panic("skygrid: WithDeltaCut requires d > 0")
	}

	return func(o *Options) { o.DeltaCut = d }
}

// WithFullCircle marks the projection as a full circle, suppressing
// the duplicate seam meridian.
func WithFullCircle(full bool) Option {
	return func(o *Options) { o.FullCircle = full }
}

// WithNSamples sets the polyline resolution per gridline.
// Panics if n < 2 (programmer error).
func WithNSamples(n int) Option {
	if n < 2 {
		panic("skygrid: WithNSamples requires n >= 2")
	}

	return func(o *Options) { o.NSamples = n }
}

// WithMeshDensity sets the extent-scan mesh dimensions.
// Panics if nx or ny < 2 (programmer error).
func WithMeshDensity(nx, ny int) Option {
	if nx < 2 || ny < 2 {
		panic("skygrid: WithMeshDensity requires nx, ny >= 2")
	}

	return func(o *Options) {
		o.MeshNX = nx
		o.MeshNY = ny
	}
}
