// File: geom/example_test.go
package geom_test

import (
	"fmt"

	"github.com/erykoff/skyproj/geom"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindLineBoxCrossings
////////////////////////////////////////////////////////////////////////////////

// ExampleFindLineBoxCrossings demonstrates locating where a diagonal
// polyline leaves a unit viewport, per side, with direction angles.
// Scenario:
//
//   - Polyline from (-2, -1) to (2, 1): a shallow diagonal through the box
//   - Viewport [-1, 1] x [-1, 1]
//   - Expect one left and one right crossing, both at ~26.57°
//
// Complexity: O(n)
func ExampleFindLineBoxCrossings() {
	xs := []float64{-2, 2}
	ys := []float64{-1, 1}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	fmt.Printf("left: (%.1f, %.1f) angle %.2f\n", got.Left[0].Pos.X, got.Left[0].Pos.Y, got.Left[0].Angle)
	fmt.Printf("right: (%.1f, %.1f) angle %.2f\n", got.Right[0].Pos.X, got.Right[0].Pos.Y, got.Right[0].Angle)
	fmt.Println("top/bottom:", len(got.Top), len(got.Bottom))

	// Output:
	// left: (-1.0, -0.5) angle 26.57
	// right: (1.0, 0.5) angle 26.57
	// top/bottom: 0 0
}
