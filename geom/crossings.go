package geom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// RectFromLimits builds the axis-aligned box spanned by the two
// opposite corners (x1, y1) and (x2, y2). Inverted limits (x1 > x2 or
// y1 > y2) are normalized, so the result always has Lo <= Hi on both
// axes.
// Complexity: O(1).
func RectFromLimits(x1, x2, y1, y2 float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{X: x1, Y: y1}, r2.Point{X: x2, Y: y2})
}

// ExpandedRect scales box about its center so that its width and
// height are both multiplied by factor. A factor slightly above 1
// tolerates floating-point misses when a crossing lands on the exact
// boundary of the original box.
// Complexity: O(1).
func ExpandedRect(box r2.Rect, factor float64) r2.Rect {
	size := box.Size()

	return box.Expanded(r2.Point{
		X: 0.5 * (factor - 1) * size.X,
		Y: 0.5 * (factor - 1) * size.Y,
	})
}

// FindLineBoxCrossings scans the polyline (xs[i], ys[i]) for crossings
// of the four sides of box and groups them per side.
//
// For every consecutive segment the detector checks, on each axis
// independently, whether the segment straddles the box bound on that
// axis (a sign change of "point is inside the bound"). At a straddle
// it linearly interpolates the other coordinate at the exact bound
// value and keeps the crossing only if that coordinate lies within the
// box's extent on the other axis. The crossing angle is the segment
// direction atan2(dy, dx) in degrees.
//
// The function is pure. A polyline with fewer than two points, or with
// mismatched slice lengths, yields an empty result. NaN coordinates
// (gap markers) never produce crossings: any interpolation touching a
// NaN fails the in-extent check.
//
// Complexity: O(n) time, O(c) memory for c crossings.
func FindLineBoxCrossings(xs, ys []float64, box r2.Rect) BoxCrossings {
	var out BoxCrossings
	if len(xs) < 2 || len(xs) != len(ys) {
		return out
	}
	// Roles of u and v swap between the two passes so the same scan
	// covers the vertical sides (u = x) and the horizontal ones (u = y).
	out.Left, out.Right = sideCrossings(xs, ys, box.X, box.Y, false)
	out.Bottom, out.Top = sideCrossings(ys, xs, box.Y, box.X, true)

	return out
}

// sideCrossings detects crossings of the two box sides perpendicular
// to the u axis. us/vs hold the polyline with u the crossed axis;
// swapped reports that u is really the y axis, which flips the emitted
// point and the angle arguments back into x/y order.
func sideCrossings(us, vs []float64, ub, vb r1.Interval, swapped bool) (lo, hi []Crossing) {
	for i := 0; i+1 < len(us); i++ {
		du := us[i+1] - us[i]
		dv := vs[i+1] - vs[i]
		for side := 0; side < 2; side++ {
			u0 := ub.Lo
			inside0 := us[i] > u0
			inside1 := us[i+1] > u0
			if side == 1 {
				u0 = ub.Hi
				inside0 = us[i] < u0
				inside1 = us[i+1] < u0
			}
			if inside0 == inside1 {
				continue
			}
			// Interpolate the companion coordinate at the exact bound.
			v := vs[i] + (u0-us[i])*dv/du
			if !(v >= vb.Lo && v <= vb.Hi) {
				continue
			}
			pos := r2.Point{X: u0, Y: v}
			angle := math.Atan2(dv, du)
			if swapped {
				pos = r2.Point{X: v, Y: u0}
				angle = math.Atan2(du, dv)
			}
			c := Crossing{Pos: pos, Angle: angle * 180 / math.Pi}
			if side == 0 {
				lo = append(lo, c)
			} else {
				hi = append(hi, c)
			}
		}
	}

	return lo, hi
}
