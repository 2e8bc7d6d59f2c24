// Package skymap orchestrates sky rendering: it ties a projection, a
// zoom-window estimate, a rasterization strategy, and value
// autoscaling together into one call per map kind.
//
// What:
//
//	A Mapper owns a projection (with its central longitude and the
//	wrap angle it implies) and the current lon/lat extent. Its Draw
//	methods accept sky data in the forms hpxmap understands — a dense
//	array, explicit pixel/value pairs, a SparseMap, or raw scattered
//	samples — pick the lon/lat window (explicit ranges, the estimated
//	pixel window, or the current extent), rasterize, and choose a
//	display value range from percentiles of the visible data.
//
// Why:
//
//	Renderers want one call that goes from "here is a map" to "here
//	is a raster, its window, and a color range". The individual
//	pieces live in hpxmap and skycrs; this package is the glue that
//	the plotting surface sits on.
//
// Core operations:
//
//	NewMapper(projName, lon0)     — projection lookup plus full-sky extent
//	SetExtent / Extent            — current lon/lat viewing window
//	ComputeExtent(lon, lat)       — tight extent enclosing projected samples
//	DrawHpxMap(m, ordering, ...)  — dense map
//	DrawHpxPix(nside, pix, vals, ordering, ...) — explicit pairs
//	DrawHspMap(sm, ...)           — sparse map
//	DrawHpxBin(lon, lat, vals, nside, ordering, ...) — bin scatter, then draw
//
// Autoscaling:
//
//	When no explicit range is given, VMin/VMax come from the 2.5th
//	and 97.5th percentiles of the unmasked raster values; an equal
//	pair (flat integer maps) widens by ±0.1.
//
// Errors:
//
//	ErrNoVisibleData — every raster cell is masked, so neither
//	autoscale nor zoom can work; hpxmap and skycrs validation errors
//	pass through wrapped.
//
// A Mapper holds mutable extent state and is not safe for concurrent
// use.
package skymap
