package skygrid

import (
	"math"
)

// Step tables for "nice" angular tick levels. Each scale pairs a step
// with the largest per-bin span it still serves; the locator picks
// the first scale whose limit covers the requested span. Minutes and
// seconds reuse one table with factors 60 and 3600.
var (
	degreeSteps  = []float64{1, 2, 5, 10, 15, 30, 45, 90, 180, 360}
	degreeLimits = []float64{1.5, 3, 7, 13, 20, 40, 70, 120, 270, 520}

	minsecSteps  = []float64{1, 2, 3, 5, 10, 15, 20, 30}
	minsecLimits = []float64{1.5, 2.5, 3.5, 8, 11, 18, 25, 45}
)

// DegreeLocator chooses "nice" tick levels for an angular axis. It is
// the level-locator policy of the graticule engine: NBins is the
// desired level count, IncludeLast controls whether a level that
// aliases the first one modulo 360 (a full cycle) is kept.
type DegreeLocator struct {
	NBins       int
	IncludeLast bool
}

// Levels returns the chosen levels between v1 and v2 in degrees,
// together with the scale factor of the selected unit (1 for degrees,
// 60 for arcminutes, 3600 for arcseconds). The levels are inclusive
// multiples of the chosen step covering [v1, v2]; a full 360-degree
// cycle is truncated to one period, dropping the aliasing last level
// unless IncludeLast is set.
// Complexity: O(k) for k returned levels.
func (l DegreeLocator) Levels(v1, v2 float64) ([]float64, float64) {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	nbins := l.NBins
	if nbins < 1 {
		nbins = 1
	}
	dv := (v2 - v1) / float64(nbins)

	step, factor := selectStep(dv)

	lo := int64(math.Floor(v1 * factor / step))
	hi := int64(math.Ceil(v2 * factor / step))
	levs := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		levs = append(levs, float64(i)*step)
	}

	// A cycle spanning 360 degrees or more repeats its levels; keep
	// one period anchored at the first level.
	if factor == 1 && levs[len(levs)-1] >= levs[0]+360 {
		n := int(360 / step)
		cyc := make([]float64, 0, n+1)
		last := n
		if l.IncludeLast {
			last = n + 1
		}
		for i := 0; i < last; i++ {
			cyc = append(cyc, levs[0]+float64(i)*step)
		}
		levs = cyc
	}

	for i := range levs {
		levs[i] /= factor
	}

	return levs, factor
}

// selectStep picks the finest scale whose per-bin limit covers dv
// degrees: seconds, then minutes, then degrees. Spans beyond the
// degree table fall back to the coarsest degree step. The scale is
// chosen purely by table coverage; there is deliberately no fixed
// span cutoff below which minutes or seconds are forced.
func selectStep(dv float64) (step, factor float64) {
	if dv <= minsecLimits[len(minsecLimits)-1]/3600 {
		return tableStep(dv*3600, minsecSteps, minsecLimits), 3600
	}
	if dv <= minsecLimits[len(minsecLimits)-1]/60 {
		return tableStep(dv*60, minsecSteps, minsecLimits), 60
	}

	return tableStep(dv, degreeSteps, degreeLimits), 1
}

// tableStep returns the first step whose limit is at least dv, or the
// last step when dv exceeds every limit.
func tableStep(dv float64, steps, limits []float64) float64 {
	for i, lim := range limits {
		if dv <= lim {
			return steps[i]
		}
	}

	return steps[len(steps)-1]
}
