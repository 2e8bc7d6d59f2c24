// Package skyproj is a rendering core for celestial-sphere data: it
// resamples HEALPix pixelized maps onto regular lon/lat rasters and
// computes projected graticules (gridlines and boundary ticks) for
// arbitrary sky projections.
//
// 🌌 What is skyproj?
//
//	A numerical library that brings together:
//		• Pixel geometry: HEALPix angle↔pixel conversion for ring and nested orderings
//		• Rasterization: sparse maps, dense arrays, or explicit pixel/value pairs → 2-D rasters
//		• Binning: scattered (lon, lat[, value]) samples → HEALPix count/mean maps
//		• Zoom windows: minimal lon/lat bounding windows with wrap-seam handling
//		• Projections: cylindrical, Mollweide, Hammer, HEALPix and Mercator transforms
//		• Graticules: gridline density selection, seam cutting, viewport tick crossings
//
// ✨ Why choose skyproj?
//
//   - Renderer-agnostic – produces rasters and polylines, draws nothing itself
//   - Predictable – pure transforms over immutable inputs, explicit sentinel errors
//   - Faithful – wraparound longitude, unseen sentinels and pole clamping handled
//     the way working sky-survey pipelines expect
//
// Everything is organized under six subpackages:
//
//	geom/    — planar primitives: line/box crossing detection with angles
//	hpgeom/  — HEALPix pixel indexing: angle↔pixel, pixel radii, resolutions
//	hpxmap/  — rasterizers, the scatter binner and the zoom-window estimator
//	skycrs/  — projection registry and vectorized forward/inverse transforms
//	skygrid/ — the graticule engine: levels, gridlines, ticks
//	skymap/  — orchestration: extents, autoscaling, end-to-end map rasters
//
// Quick start:
//
//	proj, _ := skycrs.Get("moll", 0)
//	grid := skygrid.New(proj)
//	grid.UpdateLimits(-180, 180, -90, 90)
//	lines, _ := grid.Gridlines(skygrid.AxisBoth)
//
// See each subpackage's doc.go for contracts, complexity and examples.
package skyproj
