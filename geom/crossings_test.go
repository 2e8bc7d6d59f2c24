package geom_test

import (
	"math"
	"testing"

	"github.com/erykoff/skyproj/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindLineBoxCrossings_HorizontalLine verifies that a straight
// horizontal line through the box yields exactly one left and one
// right crossing with angle 0 and no top/bottom crossings.
func TestFindLineBoxCrossings_HorizontalLine(t *testing.T) {
	xs := []float64{-2, 2}
	ys := []float64{0, 0}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	require.Len(t, got.Left, 1, "one left crossing expected")
	require.Len(t, got.Right, 1, "one right crossing expected")
	assert.Empty(t, got.Bottom, "no bottom crossing for a horizontal line")
	assert.Empty(t, got.Top, "no top crossing for a horizontal line")

	assert.InDelta(t, -1.0, got.Left[0].Pos.X, 1e-12)
	assert.InDelta(t, 0.0, got.Left[0].Pos.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Left[0].Angle, 1e-12, "moving toward +x means 0 degrees")
	assert.InDelta(t, 1.0, got.Right[0].Pos.X, 1e-12)
	assert.InDelta(t, 0.0, got.Right[0].Pos.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Right[0].Angle, 1e-12)
}

// TestFindLineBoxCrossings_VerticalLine verifies bottom/top detection
// and the 90 degree angle of an upward vertical segment.
func TestFindLineBoxCrossings_VerticalLine(t *testing.T) {
	xs := []float64{0, 0}
	ys := []float64{-2, 2}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	require.Len(t, got.Bottom, 1)
	require.Len(t, got.Top, 1)
	assert.Empty(t, got.Left)
	assert.Empty(t, got.Right)

	assert.InDelta(t, 0.0, got.Bottom[0].Pos.X, 1e-12)
	assert.InDelta(t, -1.0, got.Bottom[0].Pos.Y, 1e-12)
	assert.InDelta(t, 90.0, got.Bottom[0].Angle, 1e-12, "moving toward +y means 90 degrees")
	assert.InDelta(t, 1.0, got.Top[0].Pos.Y, 1e-12)
	assert.InDelta(t, 90.0, got.Top[0].Angle, 1e-12)
}

// TestFindLineBoxCrossings_Diagonal verifies that a diagonal through
// two corners is reported on all four sides with a 45 degree angle.
func TestFindLineBoxCrossings_Diagonal(t *testing.T) {
	xs := []float64{-2, 2}
	ys := []float64{-2, 2}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	require.Equal(t, 4, got.Count(), "corner-to-corner diagonal crosses every side")
	assert.InDelta(t, -1.0, got.Left[0].Pos.Y, 1e-12)
	assert.InDelta(t, -1.0, got.Bottom[0].Pos.X, 1e-12)
	assert.InDelta(t, 1.0, got.Right[0].Pos.Y, 1e-12)
	assert.InDelta(t, 1.0, got.Top[0].Pos.X, 1e-12)
	for _, c := range []geom.Crossing{got.Left[0], got.Right[0], got.Bottom[0], got.Top[0]} {
		assert.InDelta(t, 45.0, c.Angle, 1e-12)
	}
}

// TestFindLineBoxCrossings_ReversedDirection verifies that direction
// is encoded in the angle: a line traversed right-to-left reports 180.
func TestFindLineBoxCrossings_ReversedDirection(t *testing.T) {
	xs := []float64{2, -2}
	ys := []float64{0, 0}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	require.Len(t, got.Left, 1)
	require.Len(t, got.Right, 1)
	assert.InDelta(t, 180.0, math.Abs(got.Left[0].Angle), 1e-12)
	assert.InDelta(t, 180.0, math.Abs(got.Right[0].Angle), 1e-12)
}

// TestFindLineBoxCrossings_OutsideExtentDiscarded verifies that a
// straddle whose interpolated coordinate misses the box extent on the
// other axis is discarded.
func TestFindLineBoxCrossings_OutsideExtentDiscarded(t *testing.T) {
	// Horizontal line above the box: straddles both x bounds, but at y=2.
	xs := []float64{-2, 2}
	ys := []float64{2, 2}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	assert.Equal(t, 0, got.Count(), "crossings outside the side's extent must be discarded")
}

// TestFindLineBoxCrossings_Degenerate verifies that short or
// inconsistent polylines yield empty results for every side.
func TestFindLineBoxCrossings_Degenerate(t *testing.T) {
	box := geom.RectFromLimits(-1, 1, -1, 1)

	assert.Equal(t, 0, geom.FindLineBoxCrossings([]float64{0}, []float64{0}, box).Count(),
		"single point cannot cross")
	assert.Equal(t, 0, geom.FindLineBoxCrossings(nil, nil, box).Count(),
		"empty polyline cannot cross")
	assert.Equal(t, 0, geom.FindLineBoxCrossings([]float64{0, 1, 2}, []float64{0, 1}, box).Count(),
		"mismatched slice lengths yield no crossings")
}

// TestFindLineBoxCrossings_NaNGap verifies that segments touching a
// NaN gap marker never contribute crossings.
func TestFindLineBoxCrossings_NaNGap(t *testing.T) {
	nan := math.NaN()
	xs := []float64{-2, nan, 2}
	ys := []float64{0, nan, 0}
	box := geom.RectFromLimits(-1, 1, -1, 1)

	got := geom.FindLineBoxCrossings(xs, ys, box)

	assert.Equal(t, 0, got.Count(), "gap-adjacent segments must not cross")
}

// TestRectFromLimits_Inverted verifies that inverted axis limits are
// normalized into Lo <= Hi intervals.
func TestRectFromLimits_Inverted(t *testing.T) {
	box := geom.RectFromLimits(2, -2, 3, -3)

	assert.Equal(t, -2.0, box.X.Lo)
	assert.Equal(t, 2.0, box.X.Hi)
	assert.Equal(t, -3.0, box.Y.Lo)
	assert.Equal(t, 3.0, box.Y.Hi)
}

// TestExpandedRect verifies scaling about the center, including the
// identity factor.
func TestExpandedRect(t *testing.T) {
	box := geom.RectFromLimits(-1, 1, -1, 1)

	doubled := geom.ExpandedRect(box, 2)
	assert.InDelta(t, -2.0, doubled.X.Lo, 1e-12)
	assert.InDelta(t, 2.0, doubled.X.Hi, 1e-12)
	assert.InDelta(t, -2.0, doubled.Y.Lo, 1e-12)
	assert.InDelta(t, 2.0, doubled.Y.Hi, 1e-12)

	same := geom.ExpandedRect(box, 1)
	assert.InDelta(t, box.X.Lo, same.X.Lo, 1e-12)
	assert.InDelta(t, box.X.Hi, same.X.Hi, 1e-12)

	// Off-center boxes scale about their own center, not the origin.
	shifted := geom.ExpandedRect(geom.RectFromLimits(0, 2, 0, 4), 1.5)
	assert.InDelta(t, -0.5, shifted.X.Lo, 1e-12)
	assert.InDelta(t, 2.5, shifted.X.Hi, 1e-12)
	assert.InDelta(t, -1.0, shifted.Y.Lo, 1e-12)
	assert.InDelta(t, 5.0, shifted.Y.Hi, 1e-12)
}
