package skygrid_test

import (
	"testing"

	"github.com/erykoff/skyproj/skygrid"
	"github.com/stretchr/testify/assert"
)

// TestDegreeLocator_DegreeSteps verifies step selection on the degree
// scale: a 90-degree span over 6 bins lands on 15-degree levels.
func TestDegreeLocator_DegreeSteps(t *testing.T) {
	levels, factor := skygrid.DegreeLocator{NBins: 6, IncludeLast: true}.Levels(0, 90)

	assert.Equal(t, 1.0, factor)
	assert.Equal(t, []float64{0, 15, 30, 45, 60, 75, 90}, levels)
}

// TestDegreeLocator_SwappedBounds verifies that inverted bounds are
// normalized before stepping.
func TestDegreeLocator_SwappedBounds(t *testing.T) {
	levels, _ := skygrid.DegreeLocator{NBins: 6, IncludeLast: true}.Levels(90, 0)
	assert.Equal(t, []float64{0, 15, 30, 45, 60, 75, 90}, levels)
}

// TestDegreeLocator_CycleTruncation verifies the full-circle rule: a
// 360-degree span repeats its first level, which is dropped unless
// IncludeLast is set.
func TestDegreeLocator_CycleTruncation(t *testing.T) {
	levels, factor := skygrid.DegreeLocator{NBins: 6, IncludeLast: false}.Levels(0, 360)
	assert.Equal(t, 1.0, factor)
	assert.Equal(t, []float64{0, 45, 90, 135, 180, 225, 270, 315}, levels)

	levels, _ = skygrid.DegreeLocator{NBins: 6, IncludeLast: true}.Levels(0, 360)
	assert.Equal(t, []float64{0, 45, 90, 135, 180, 225, 270, 315, 360}, levels)
}

// TestDegreeLocator_NegativeRange verifies inclusive coverage of a
// range straddling zero: levels enclose both bounds.
func TestDegreeLocator_NegativeRange(t *testing.T) {
	levels, _ := skygrid.DegreeLocator{NBins: 6, IncludeLast: true}.Levels(-50, 40)

	assert.LessOrEqual(t, levels[0], -50.0)
	assert.GreaterOrEqual(t, levels[len(levels)-1], 40.0)
	assert.Equal(t, []float64{-60, -45, -30, -15, 0, 15, 30, 45}, levels)
}

// TestDegreeLocator_MinuteScale verifies the drop to arcminute steps
// for sub-degree spans.
func TestDegreeLocator_MinuteScale(t *testing.T) {
	levels, factor := skygrid.DegreeLocator{NBins: 6, IncludeLast: true}.Levels(0, 0.1)

	assert.Equal(t, 60.0, factor)
	assert.Len(t, levels, 7, "0..6 arcminutes inclusive")
	assert.InDelta(t, 1.0/60.0, levels[1], 1e-12, "levels come back in degrees")
}

// TestDegreeLocator_SecondScale verifies the drop to arcsecond steps
// for tiny spans.
func TestDegreeLocator_SecondScale(t *testing.T) {
	levels, factor := skygrid.DegreeLocator{NBins: 6, IncludeLast: true}.Levels(0, 0.002)

	assert.Equal(t, 3600.0, factor)
	assert.InDelta(t, 1.0/3600.0, levels[1], 1e-15, "one arcsecond step")
	assert.GreaterOrEqual(t, levels[len(levels)-1], 0.002)
}

// TestDegreeLocator_HugeSpanClamps verifies that spans beyond the
// degree table fall back to the coarsest step instead of failing.
func TestDegreeLocator_HugeSpanClamps(t *testing.T) {
	levels, factor := skygrid.DegreeLocator{NBins: 1, IncludeLast: true}.Levels(0, 720)

	assert.Equal(t, 1.0, factor)
	assert.Equal(t, []float64{0, 360}, levels, "cycle truncation still applies at step 360")
}
