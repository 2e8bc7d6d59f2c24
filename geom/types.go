// Package geom defines the result types shared by the crossing
// detector and its consumers in the graticule engine.
package geom

import (
	"github.com/golang/geo/r2"
)

// Crossing is one intersection of a polyline with a box side.
//
// Pos is the planar intersection point. Angle is the direction of the
// crossing segment in degrees, measured counterclockwise from the +x
// axis (0° means the line is moving toward +x at the crossing).
type Crossing struct {
	Pos   r2.Point
	Angle float64
}

// BoxCrossings groups crossings by the box side they occur on.
// Sides are named in viewport terms: Left and Right are the vertical
// sides at the box's minimum and maximum x; Bottom and Top are the
// horizontal sides at the minimum and maximum y.
type BoxCrossings struct {
	Left   []Crossing
	Right  []Crossing
	Bottom []Crossing
	Top    []Crossing
}

// Count returns the total number of crossings across all four sides.
// Complexity: O(1).
func (b BoxCrossings) Count() int {
	return len(b.Left) + len(b.Right) + len(b.Bottom) + len(b.Top)
}
