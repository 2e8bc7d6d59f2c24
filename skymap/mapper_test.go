package skymap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erykoff/skyproj/hpgeom"
	"github.com/erykoff/skyproj/hpxmap"
	"github.com/erykoff/skyproj/skycrs"
	"github.com/erykoff/skyproj/skymap"
)

// patchMap builds a dense map of the given resolution with value
// everywhere inside the lon/lat patch and the unseen sentinel outside.
func patchMap(t *testing.T, nside int64, lonMin, lonMax, latMin, latMax, value float64) []float64 {
	t.Helper()

	npix, err := hpgeom.NSideToNPixel(nside)
	require.NoError(t, err)
	m := make([]float64, npix)
	for i := range m {
		m[i] = hpgeom.Unseen
	}

	var lon, lat []float64
	for lo := lonMin; lo <= lonMax; lo += 1 {
		for la := latMin; la <= latMax; la += 1 {
			lon = append(lon, lo)
			lat = append(lat, la)
		}
	}
	pix, err := hpgeom.AngleToPixel(nside, lon, lat, hpgeom.Ring)
	require.NoError(t, err)
	for _, p := range pix {
		m[p] = value
	}

	return m
}

// TestNewMapper verifies the starting extent and the wrap angle, and
// that unknown projection names surface skycrs.ErrUnknownProjection.
func TestNewMapper(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	lonMin, lonMax, latMin, latMax := m.Extent()
	assert.InDelta(t, -180.0, lonMin, 1e-12)
	assert.InDelta(t, 180.0, lonMax, 1e-12)
	assert.InDelta(t, -90.0, latMin, 1e-12)
	assert.InDelta(t, 90.0, latMax, 1e-12)
	assert.InDelta(t, 180.0, m.Wrap(), 1e-12)

	_, err = skymap.NewMapper("sinusoidal", 0)
	assert.ErrorIs(t, err, skycrs.ErrUnknownProjection)
}

// TestSetExtent verifies the extent accessor roundtrip.
func TestSetExtent(t *testing.T) {
	m, err := skymap.NewMapper("moll", 0)
	require.NoError(t, err)

	m.SetExtent(10, 50, -20, 30)
	lonMin, lonMax, latMin, latMax := m.Extent()
	assert.Equal(t, 10.0, lonMin)
	assert.Equal(t, 50.0, lonMax)
	assert.Equal(t, -20.0, latMin)
	assert.Equal(t, 30.0, latMax)
}

// TestComputeExtent verifies the cushioned latitude bounds and that
// the stepped longitude bounds enclose every sample.
func TestComputeExtent(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	lon := []float64{40, 45, 50, 55, 60}
	lat := []float64{-10, -5, 0, 5, 10}
	window, err := m.ComputeExtent(lon, lat)
	require.NoError(t, err)

	// 5% of the 20 degree latitude range on each side.
	assert.InDelta(t, -11.0, window.LatMin, 1e-12)
	assert.InDelta(t, 11.0, window.LatMax, 1e-12)
	assert.LessOrEqual(t, window.LonMin, 40.0)
	assert.GreaterOrEqual(t, window.LonMax, 60.0)
	assert.GreaterOrEqual(t, window.LonMin, -180.0)
	assert.LessOrEqual(t, window.LonMax, 180.0)
}

// TestComputeExtent_PoleClip verifies the latitude cushion never
// pushes a bound past a pole.
func TestComputeExtent_PoleClip(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	window, err := m.ComputeExtent([]float64{0, 10}, []float64{50, 89})
	require.NoError(t, err)
	assert.LessOrEqual(t, window.LatMax, 90.0)
}

// TestComputeExtent_SinglePoint verifies the degenerate case of a
// zero longitude spread still terminates and encloses the sample.
func TestComputeExtent_SinglePoint(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	window, err := m.ComputeExtent([]float64{30}, []float64{15})
	require.NoError(t, err)
	assert.LessOrEqual(t, window.LonMin, 30.0)
	assert.GreaterOrEqual(t, window.LonMax, 30.0)
}

// TestComputeExtent_Empty verifies the empty-input error.
func TestComputeExtent_Empty(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	_, err = m.ComputeExtent(nil, nil)
	assert.ErrorIs(t, err, hpxmap.ErrNoValidPixels)
}

// TestDrawHpxMap_Flat verifies the window of a no-zoom draw matches
// the mapper extent and that an all-equal value set autoscales to the
// widened ±0.1 range.
func TestDrawHpxMap_Flat(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	nside := int64(4)
	npix, err := hpgeom.NSideToNPixel(nside)
	require.NoError(t, err)
	hpxMap := make([]float64, npix)
	for i := range hpxMap {
		hpxMap[i] = 1.0
	}

	raster, err := m.DrawHpxMap(hpxMap, hpgeom.Ring, skymap.WithZoom(false), skymap.WithXSize(50))
	require.NoError(t, err)

	assert.InDelta(t, -180.0, raster.Window.LonMin, 1e-12)
	assert.InDelta(t, 180.0, raster.Window.LonMax, 1e-12)
	assert.InDelta(t, 0.9, raster.VMin, 1e-12)
	assert.InDelta(t, 1.1, raster.VMax, 1e-12)
	assert.Equal(t, 49, raster.Grid.Cols())
	assert.Equal(t, 49, raster.Grid.Rows())
}

// TestDrawHpxMap_Zoom verifies a zoomed draw tightens the mapper
// extent around the valid patch instead of keeping the full sky.
func TestDrawHpxMap_Zoom(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	hpxMap := patchMap(t, 8, 40, 60, -10, 10, 2.0)
	raster, err := m.DrawHpxMap(hpxMap, hpgeom.Ring, skymap.WithXSize(100))
	require.NoError(t, err)

	lonMin, lonMax, latMin, latMax := m.Extent()
	assert.Greater(t, lonMin, -180.0)
	assert.Less(t, lonMax, 180.0)
	assert.Greater(t, latMin, -90.0)
	assert.Less(t, latMax, 90.0)

	// The rasterized window itself comes from the pixel estimate and
	// must cover the patch.
	assert.LessOrEqual(t, raster.Window.LonMin, 40.0)
	assert.GreaterOrEqual(t, raster.Window.LonMax, 60.0)
	assert.LessOrEqual(t, raster.Window.LatMin, -10.0)
	assert.GreaterOrEqual(t, raster.Window.LatMax, 10.0)
}

// TestDrawHpxMap_ExplicitRanges verifies explicit windows and value
// ranges override both the estimate and the autoscale.
func TestDrawHpxMap_ExplicitRanges(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	hpxMap := patchMap(t, 8, 40, 60, -10, 10, 2.0)
	raster, err := m.DrawHpxMap(hpxMap, hpgeom.Ring,
		skymap.WithZoom(false),
		skymap.WithXSize(50),
		skymap.WithLonRange(30, 70),
		skymap.WithLatRange(-15, 15),
		skymap.WithValueRange(0, 5))
	require.NoError(t, err)

	assert.Equal(t, 30.0, raster.Window.LonMin)
	assert.Equal(t, 70.0, raster.Window.LonMax)
	assert.Equal(t, -15.0, raster.Window.LatMin)
	assert.Equal(t, 15.0, raster.Window.LatMax)
	assert.Equal(t, 0.0, raster.VMin)
	assert.Equal(t, 5.0, raster.VMax)
}

// TestDrawHpxMap_Percentiles verifies autoscaling clips outliers:
// with one huge value among many small ones the 97.5th percentile
// stays far below the maximum.
func TestDrawHpxMap_Percentiles(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	nside := int64(4)
	npix, err := hpgeom.NSideToNPixel(nside)
	require.NoError(t, err)
	hpxMap := make([]float64, npix)
	for i := range hpxMap {
		hpxMap[i] = float64(i % 10)
	}
	hpxMap[0] = 1e6

	raster, err := m.DrawHpxMap(hpxMap, hpgeom.Ring, skymap.WithZoom(false), skymap.WithXSize(50))
	require.NoError(t, err)
	assert.Less(t, raster.VMax, 100.0)
	assert.GreaterOrEqual(t, raster.VMin, 0.0)
}

// TestDrawHpxMap_NoVisibleData verifies the all-masked errors on both
// paths: the window estimate fails first when zooming, and the
// autoscale fails when the window is fixed.
func TestDrawHpxMap_NoVisibleData(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	nside := int64(4)
	npix, err := hpgeom.NSideToNPixel(nside)
	require.NoError(t, err)
	hpxMap := make([]float64, npix)
	for i := range hpxMap {
		hpxMap[i] = hpgeom.Unseen
	}

	_, err = m.DrawHpxMap(hpxMap, hpgeom.Ring)
	assert.ErrorIs(t, err, hpxmap.ErrNoValidPixels)

	_, err = m.DrawHpxMap(hpxMap, hpgeom.Ring, skymap.WithZoom(false), skymap.WithXSize(50))
	assert.ErrorIs(t, err, skymap.ErrNoVisibleData)
}

// TestDrawHpxMap_BadLength verifies a slice that is not a valid map
// size is rejected before any work.
func TestDrawHpxMap_BadLength(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	_, err = m.DrawHpxMap(make([]float64, 100), hpgeom.Ring)
	assert.ErrorIs(t, err, hpgeom.ErrInvalidNPixel)
}

// TestDrawHpxPix verifies the explicit-pairs path renders the stored
// values and rejects duplicate ids.
func TestDrawHpxPix(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	nside := int64(8)
	lon := []float64{45, 50, 55}
	lat := []float64{0, 2, 4}
	pix, err := hpgeom.AngleToPixel(nside, lon, lat, hpgeom.Nest)
	require.NoError(t, err)
	vals := []float64{1, 2, 3}

	raster, err := m.DrawHpxPix(nside, pix, vals, hpgeom.Nest, skymap.WithXSize(50))
	require.NoError(t, err)

	visible := 0
	for i, v := range raster.Grid.Values() {
		if raster.Grid.Mask()[i] {
			continue
		}
		visible++
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
	}
	assert.Greater(t, visible, 0)

	_, err = m.DrawHpxPix(nside, []int64{pix[0], pix[0]}, []float64{1, 2}, hpgeom.Nest)
	assert.ErrorIs(t, err, hpxmap.ErrDuplicatePixels)
}

// TestDrawHspMap verifies the sparse-map path: the zoom window is
// estimated from the stored pixels and the drawn values match.
func TestDrawHspMap(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	sm, err := hpxmap.NewSparseMap(16, hpgeom.Ring)
	require.NoError(t, err)
	lon := []float64{100, 102, 104, 106}
	lat := []float64{-30, -29, -28, -27}
	pix, err := hpgeom.AngleToPixel(16, lon, lat, hpgeom.Ring)
	require.NoError(t, err)
	for i, p := range pix {
		require.NoError(t, sm.Set(p, float64(i+1)))
	}

	raster, err := m.DrawHspMap(sm, skymap.WithXSize(50))
	require.NoError(t, err)

	assert.LessOrEqual(t, raster.Window.LonMin, 100.0)
	assert.GreaterOrEqual(t, raster.Window.LonMax, 106.0)

	for i, v := range raster.Grid.Values() {
		if raster.Grid.Mask()[i] {
			continue
		}
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 4.0)
	}
}

// TestDrawHpxBin verifies the bin-then-draw path returns both the
// binned map and its raster, with means in the binned cells.
func TestDrawHpxBin(t *testing.T) {
	m, err := skymap.NewMapper("cyl", 0)
	require.NoError(t, err)

	nside := int64(8)
	lon := []float64{20, 20, 45, 70}
	lat := []float64{5, 5, 25, 45}
	values := []float64{2, 4, 6, 8}

	binned, raster, err := m.DrawHpxBin(lon, lat, values, nside, hpgeom.Ring, skymap.WithXSize(50))
	require.NoError(t, err)
	npix, err := hpgeom.NSideToNPixel(nside)
	require.NoError(t, err)
	require.Len(t, binned, int(npix))

	pix, err := hpgeom.AngleToPixel(nside, lon[:1], lat[:1], hpgeom.Ring)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, binned[pix[0]], 1e-12, "two samples of 2 and 4 in one pixel average to 3")

	assert.NotNil(t, raster)
	assert.Greater(t, raster.VMax, raster.VMin)
}

// TestDrawOptionPanics verifies programmer-error options panic at
// construction, not at draw time.
func TestDrawOptionPanics(t *testing.T) {
	assert.Panics(t, func() { skymap.WithXSize(1) })
	assert.Panics(t, func() { skymap.WithAspect(0) })
	assert.NotPanics(t, func() { skymap.WithXSize(2) })
	assert.NotPanics(t, func() { skymap.WithAspect(0.5) })
}
