// Package hpxmap converts HEALPix pixel data into renderable form:
// regular lon/lat rasters, binned sky maps, and zoom windows.
//
// What:
//
//	Three tightly related operations over pixelized sphere data:
//
//	 1. Rasterization — resample a pixel source onto a regular raster
//	    of lon/lat cells. Sources come in three kinds: a dense array
//	    indexed by pixel id, a SparseMap of pixel→value entries, or
//	    explicit paired pixel/value slices. All three share the mesh,
//	    midpoint and masking plumbing and differ only in value lookup.
//	 2. Binning — aggregate scattered (lon, lat[, value]) samples into
//	    a dense count or mean map at a chosen resolution.
//	 3. Window estimation — compute the minimal lon/lat window covering
//	    a set of occupied pixels, collapsing to full sky when the
//	    window would straddle the wrap seam.
//
// Why:
//
//	Renderers want rectangular arrays with validity masks, not sphere
//	indexed data. Everything irregular (wraparound longitude, unseen
//	sentinels, missing coverage, duplicate protection) is resolved
//	here so display layers stay dumb.
//
// Core operations:
//
//	RasterizeDense(m, ordering, window, xsize, aspect)
//	RasterizeSparse(sm, window, xsize, aspect)
//	RasterizePairs(nside, pix, vals, ordering, window, xsize, aspect)
//	Bin(nside, lon, lat, values, ordering)
//	PixelsWindow(nside, ordering, pix, wrap)
//
// Raster layout:
//
//	The mesh has xsize longitude edges and round(aspect*xsize)
//	latitude edges; values are sampled at the midpoints between
//	adjacent edges, so the value array has one fewer row and column
//	than the mesh. Edge-aligned renderers consume the edges, the
//	values fill the cells between them.
//
// Complexity:
//
//	Rasterization is O(W*H) over raster cells plus an O(n log n) sort
//	for explicit pairs; binning is O(n + npix); window estimation is
//	O(n log n) dominated by the latitude median.
//
// Errors:
//
//	ErrNoValidPixels     — empty pixel set where one is required
//	ErrDuplicatePixels   — explicit pair ids are not unique
//	ErrSizeMismatch      — paired slices differ in length
//	ErrInvalidRasterSize — raster dimensions too small to form cells
//	ErrWrongValueKind    — sparse map mutation does not match its kind
//
// All other numerical edge cases (poles, unmatched samples, seams)
// mask cells instead of failing.
package hpxmap
