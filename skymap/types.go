// Package skymap defines the draw-call options, result record, and
// sentinel errors of the rendering orchestrator.
package skymap

import (
	"errors"

	"github.com/erykoff/skyproj/hpxmap"
)

// Sentinel errors for skymap operations.
var (
	// ErrNoVisibleData indicates a raster with every cell masked where visible values are required.
	ErrNoVisibleData = errors.New("skymap: no visible data in the rasterized window")
)

// Raster is one draw result: the rasterized grid, the lon/lat window
// it covers, and the display value range chosen for it.
type Raster struct {
	Grid   *hpxmap.RasterGrid
	Window hpxmap.LonLatWindow
	VMin   float64
	VMax   float64
}

// drawConfig collects per-call draw settings.
type drawConfig struct {
	zoom   bool
	xsize  int
	aspect float64

	vmin *float64
	vmax *float64

	lonRange *[2]float64
	latRange *[2]float64
}

// defaultDrawConfig mirrors the draw defaults: zoom to the data, 1000
// raster columns, square aspect.
func defaultDrawConfig() drawConfig {
	return drawConfig{
		zoom:   true,
		xsize:  1000,
		aspect: 1.0,
	}
}

// DrawOption mutates one draw call's settings.
type DrawOption func(*drawConfig)

// WithZoom controls whether the draw updates the mapper extent to fit
// the data (default true).
func WithZoom(zoom bool) DrawOption {
	return func(c *drawConfig) { c.zoom = zoom }
}

// WithXSize sets the raster column count.
// Panics if xsize < 2 (programmer error).
func WithXSize(xsize int) DrawOption {
	if xsize < 2 {
		panic("skymap: WithXSize requires xsize >= 2")
	}

	return func(c *drawConfig) { c.xsize = xsize }
}

// WithAspect sets the raster aspect ratio (rows = round(aspect*xsize)).
// Panics if aspect <= 0 (programmer error).
func WithAspect(aspect float64) DrawOption {
	if aspect <= 0 {
		panic("skymap: WithAspect requires aspect > 0")
	}

	return func(c *drawConfig) { c.aspect = aspect }
}

// WithValueRange fixes the display range instead of autoscaling.
func WithValueRange(vmin, vmax float64) DrawOption {
	return func(c *drawConfig) {
		c.vmin = &vmin
		c.vmax = &vmax
	}
}

// WithLonRange fixes the rasterized longitude window in degrees.
func WithLonRange(lonMin, lonMax float64) DrawOption {
	return func(c *drawConfig) { c.lonRange = &[2]float64{lonMin, lonMax} }
}

// WithLatRange fixes the rasterized latitude window in degrees.
func WithLatRange(latMin, latMax float64) DrawOption {
	return func(c *drawConfig) { c.latRange = &[2]float64{latMin, latMax} }
}
