package skycrs

import (
	"fmt"
	"math"
	"sort"

	"github.com/owlpinetech/flatsphere"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// planarRadius scales flatsphere's unit-sphere coordinates so one
	// planar unit spans one equatorial degree on a cylinder.
	planarRadius = 180 / math.Pi

	// seamNudge moves a wrap-meridian longitude just inside the
	// visible side before projecting.
	seamNudge = 1e-10
)

// transform is the closed-form backend contract: radian lat/lon on
// the unit sphere to planar coordinates and back. flatsphere
// projections satisfy it directly; mollweide is implemented locally.
type transform interface {
	Project(lat, lon float64) (x, y float64)
	Inverse(x, y float64) (lat, lon float64)
}

// registry maps projection names onto their closed-form backends.
var registry = map[string]func() transform{
	"cyl":    func() transform { return flatsphere.NewEquirectangular(0) },
	"moll":   func() transform { return mollweide{} },
	"hammer": func() transform { return flatsphere.NewHammer() },
	"hpx":    func() transform { return flatsphere.NewHEALPixStandard() },
	"merc":   func() transform { return flatsphere.NewMercator() },
}

// Get returns the named projection centered on lon0 degrees.
// lon0 is normalized into [-180, 180); a magnitude of exactly 180 is
// moved to 179.9999 so the seam never coincides with its own wrap.
// Returns ErrUnknownProjection for a name outside the registry.
// Complexity: O(1).
func Get(name string, lon0 float64) (Projection, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownProjection)
	}

	lon0 = WrapValues(lon0, 180)
	if math.Abs(lon0) == 180 {
		lon0 = 179.9999
	}

	return &projection{
		name:  name,
		lon0:  lon0,
		wrap:  floorMod(lon0+180, 360),
		inner: build(),
	}, nil
}

// Names returns the sorted registry names.
// Complexity: O(k log k).
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// WrapValues maps lon into the half-open window [wrap-360, wrap)
// with floor-mod semantics.
// Complexity: O(1).
func WrapValues(lon, wrap float64) float64 {
	return floorMod(lon+(360-wrap), 360) - (360 - wrap)
}

// floorMod returns v modulo m in [0, m).
func floorMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}

	return r
}

// isclose matches the usual relative/absolute tolerance test
// (atol 1e-8, rtol 1e-5 on the second operand).
func isclose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+1e-5*math.Abs(b)
}

// projection wraps a flatsphere backend into the degree-based,
// lon-first, seam-aware contract. Immutable after construction.
type projection struct {
	name  string
	lon0  float64
	wrap  float64
	inner transform
}

func (p *projection) Name() string {
	return p.name
}

func (p *projection) Radius() float64 {
	return planarRadius
}

func (p *projection) Lon0() float64 {
	return p.lon0
}

func (p *projection) LonWrap() float64 {
	return p.wrap
}

// Forward projects lon/lat to planar x/y.
// Wrap handling happens per sample: a longitude on the wrap meridian
// is nudged by seamNudge to stay on the visible side, then every
// longitude is wrapped into [wrap-360, wrap) and recentered on lon0
// before the closed-form transform.
// Complexity: O(n).
func (p *projection) Forward(lon, lat []float64) (x, y []float64) {
	x = make([]float64, len(lon))
	y = make([]float64, len(lon))
	for i := range lon {
		l := lon[i]
		if isclose(l, p.wrap) {
			l = p.wrap - seamNudge
		}
		l = WrapValues(l, p.wrap)
		px, py := p.inner.Project(lat[i]*degToRad, (l-p.lon0)*degToRad)
		x[i] = px * planarRadius
		y[i] = py * planarRadius
	}

	return x, y
}

// Inverse recovers lon/lat from planar x/y. Samples whose recovered
// angles fall outside the sphere (the planar point is outside the
// projection outline) become NaN pairs.
// Complexity: O(n).
func (p *projection) Inverse(x, y []float64) (lon, lat []float64) {
	lon = make([]float64, len(x))
	lat = make([]float64, len(x))
	for i := range x {
		la, lo := p.inner.Inverse(x[i]/planarRadius, y[i]/planarRadius)
		lo, la = lo*radToDeg, la*radToDeg
		if math.IsNaN(lo) || math.IsNaN(la) ||
			math.Abs(lo) > 180+1e-9 || math.Abs(la) > 90+1e-9 {
			lon[i] = math.NaN()
			lat[i] = math.NaN()

			continue
		}
		lon[i] = lo + p.lon0
		lat[i] = la
	}

	return lon, lat
}
