// Package skygrid generates the graticule for a projected sky map:
// gridline polylines in projection coordinates and tick crossings on
// the viewport boundary.
//
// What:
//
//	An Engine owns one projection and one viewport. UpdateLimits runs
//	the full pipeline for the current viewport:
//
//	 1. Scan an inverse-transformed mesh for the extreme spherical
//	    bounds visible (NaN samples, from planar points off the
//	    sphere, are skipped).
//	 2. Pick gridline counts — latitude fixed, longitude scaled by
//	    the visible width/height ratio corrected for meridian
//	    convergence.
//	 3. Choose "nice" tick levels per axis with DegreeLocator.
//	 4. Sweep one 100-point polyline per level through the forward
//	    transform.
//	 5. Cut each polyline at projection discontinuities by inserting
//	    NaN gap markers (CutGridLineJumps).
//	 6. Intersect each cut polyline with the slightly expanded
//	    viewport box and file the crossings per edge as ticks.
//
//	The result is cached and reused until the viewport limits change;
//	Invalidate drops the memo explicitly.
//
// Why:
//
//	A readable graticule is viewport-dependent: zooming in must raise
//	line density, a wrapped projection must not draw a stroke across
//	its seam, and tick labels belong where gridlines actually leave
//	the frame. All of that is geometry, not styling, so it lives here
//	and renderers consume finished polylines and tick records.
//
// Core operations:
//
//	New(proj, opts...)            — engine construction with derived defaults
//	UpdateLimits(x1, x2, y1, y2)  — recompute (memoized on exact bounds)
//	Gridlines(axis)               — cut polylines per axis family
//	Ticks(axis, edge)             — tick crossings for one viewport edge
//	CutGridLineJumps(xs, ys, d)   — the discontinuity-cutting primitive
//
// Complexity:
//
//	One update costs O(mesh) for the extent scan plus
//	O(levels·samples) for line generation and tick extraction.
//
// Errors:
//
//	ErrNotInitialized — accessor before the first UpdateLimits
//	ErrInvalidAxis    — selector outside the Axis enum
//	ErrInvalidEdge    — selector outside the Edge enum
//
// A viewport that sees no part of the sphere yields an empty
// graticule, not an error.
//
// Engines hold mutable cached state and are not safe for concurrent
// use; confine each instance to a single rendering goroutine.
package skygrid
