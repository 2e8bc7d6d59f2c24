// Package geom provides the planar geometry primitives used by the
// graticule engine: viewport rectangles and polyline/box crossing
// detection.
//
// What:
//
//	Given a polyline in projected coordinates and an axis-aligned box,
//	FindLineBoxCrossings locates every point where the polyline crosses
//	one of the four box sides, together with the local direction angle
//	of the crossing segment. The results are grouped per side
//	(left/right/bottom/top) so callers can turn them into edge ticks.
//
// Why:
//
//	Tick placement on a projected map needs to know where each gridline
//	leaves the viewport and at what angle, so the tick mark and its
//	label can be oriented along the line. Doing this per side keeps the
//	consumer trivial.
//
// Core operations:
//
//	RectFromLimits(x1, x2, y1, y2) — viewport box from (possibly inverted) axis limits
//	ExpandedRect(box, factor)      — scale a box about its center
//	FindLineBoxCrossings(xs, ys, box) — per-side crossing positions and angles
//
// Complexity:
//
//	FindLineBoxCrossings runs in O(n) time and O(c) memory for a
//	polyline of n points producing c crossings.
//
// Errors:
//
//	None. Degenerate inputs (fewer than two points, NaN gap markers)
//	yield empty or partial results rather than errors; rendering paths
//	must stay resilient.
//
// Planar points and rectangles reuse github.com/golang/geo/r2 and r1.
package geom
