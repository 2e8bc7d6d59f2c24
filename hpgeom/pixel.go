package hpgeom

import (
	"fmt"
	"math"

	"github.com/owlpinetech/healpix"
)

const degToRad = math.Pi / 180

// scheme maps an Ordering onto the backing library's scheme constant.
func (o Ordering) scheme() (healpix.HealpixScheme, error) {
	switch o {
	case Ring:
		return healpix.RingScheme, nil
	case Nest:
		return healpix.NestScheme, nil
	default:
		return healpix.RingScheme, fmt.Errorf("ordering %d: %w", int(o), ErrInvalidOrdering)
	}
}

// AngleToPixel converts (lon, lat) angles in degrees to pixel ids
// under the given nside and ordering. Longitudes may be any finite
// value (they wrap modulo 360); latitudes are clamped to [-90, 90].
// lon and lat must have equal length. Ring ids come from the
// closed-form ring geometry (the forward twin of ringPixelCenter);
// nested output converts the ring id afterwards.
// Returns ErrInvalidNSide or ErrInvalidOrdering on bad parameters.
// Complexity: O(n).
func AngleToPixel(nside int64, lon, lat []float64, ordering Ordering) ([]int64, error) {
	order, err := NSideToOrder(nside)
	if err != nil {
		return nil, err
	}
	if _, err = ordering.scheme(); err != nil {
		return nil, err
	}
	if len(lon) != len(lat) {
		return nil, fmt.Errorf("lon has %d entries, lat has %d: %w", len(lon), len(lat), ErrInvalidNPixel)
	}

	hpOrder := healpix.HealpixOrder(order)
	pix := make([]int64, len(lon))
	for i := range lon {
		la := lat[i]
		if la > 90 {
			la = 90
		} else if la < -90 {
			la = -90
		}
		p := ringPixelFromAngle(nside, lon[i], la)
		if ordering == Nest {
			p = int64(healpix.RingPixel(p).PixelId(hpOrder, healpix.NestScheme))
		}
		pix[i] = p
	}

	return pix, nil
}

// ringPixelFromAngle returns the ring-ordered pixel containing the
// degree angle (lon, lat). Same region split as ringPixelCenter: the
// equatorial belt locates the ring by the two diagonal pixel-edge
// line indices crossing the point, the caps by the radial position
// scaled into the ring count from the nearer pole.
func ringPixelFromAngle(nside int64, lon, lat float64) int64 {
	z := math.Sin(lat * degToRad)
	phi := math.Mod(lon, 360)
	if phi < 0 {
		phi += 360
	}
	tt := phi / 90 // quadrant coordinate in [0, 4)

	ns := float64(nside)
	ncap := 2 * nside * (nside - 1)
	npix := 12 * nside * nside

	if math.Abs(z) <= 2.0/3.0 { // equatorial belt
		temp1 := ns * (0.5 + tt)
		temp2 := ns * z * 0.75
		jp := int64(math.Floor(temp1 - temp2)) // ascending edge line
		jm := int64(math.Floor(temp1 + temp2)) // descending edge line

		ir := nside + 1 + jp - jm // belt ring in [1, 2*nside+1]
		kshift := 1 - ir&1
		ip := imod((jp+jm-nside+kshift+1)/2, 4*nside)

		return ncap + (ir-1)*4*nside + ip
	}

	// polar caps
	tp := tt - math.Floor(tt)
	tmp := ns * math.Sqrt(3*(1-math.Abs(z)))
	jp := int64(tp * tmp)
	jm := int64((1 - tp) * tmp)

	ir := jp + jm + 1 // ring counted from the nearer pole, in [1, nside]
	ip := imod(int64(tt*float64(ir)), 4*ir)
	if z > 0 {
		return 2*ir*(ir-1) + ip
	}

	return npix - 2*ir*(ir+1) + ip
}

// imod returns v modulo m in [0, m).
func imod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// PixelToAngle converts pixel ids to their center (lon, lat) angles in
// degrees under the given nside and ordering. Nested ids are first
// converted to ring order; centers come from the closed-form ring
// geometry (polar caps and equatorial belt).
// Returns ErrInvalidNSide, ErrInvalidOrdering, or ErrInvalidPixel for
// an id outside [0, 12*nside²).
// Complexity: O(n).
func PixelToAngle(nside int64, pix []int64, ordering Ordering) (lon, lat []float64, err error) {
	order, err := NSideToOrder(nside)
	if err != nil {
		return nil, nil, err
	}
	if _, err = ordering.scheme(); err != nil {
		return nil, nil, err
	}

	npix := 12 * nside * nside
	hpOrder := healpix.HealpixOrder(order)
	lon = make([]float64, len(pix))
	lat = make([]float64, len(pix))
	for i, p := range pix {
		if p < 0 || p >= npix {
			return nil, nil, fmt.Errorf("pixel %d with nside %d: %w", p, nside, ErrInvalidPixel)
		}
		rp := p
		if ordering == Nest {
			rp = int64(healpix.NestPixel(p).PixelId(hpOrder, healpix.RingScheme))
		}
		lon[i], lat[i] = ringPixelCenter(nside, rp)
	}

	return lon, lat, nil
}

// ringPixelCenter returns the center of ring-ordered pixel p in
// degrees. The sphere splits into the north polar cap, the equatorial
// belt, and the south polar cap; each region has its own closed form
// for the ring index, the in-ring position, and z = cos(colatitude).
func ringPixelCenter(nside, p int64) (lon, lat float64) {
	ncap := 2 * nside * (nside - 1)
	npix := 12 * nside * nside
	ns := float64(nside)

	var z, phi float64
	switch {
	case p < ncap: // north polar cap
		iring := (1 + isqrt(1+2*p)) >> 1
		iphi := (p + 1) - 2*iring*(iring-1)
		z = 1 - float64(iring*iring)/(3*ns*ns)
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))
	case p < npix-ncap: // equatorial belt
		ip := p - ncap
		iring := ip/(4*nside) + nside
		iphi := ip%(4*nside) + 1
		fodd := 0.5 * float64(1+((iring+nside)&1))
		z = (2*ns - float64(iring)) * 2 / (3 * ns)
		phi = (float64(iphi) - fodd) * math.Pi / (2 * ns)
	default: // south polar cap
		ip := npix - p
		iring := (1 + isqrt(2*ip-1)) >> 1
		iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))
		z = -1 + float64(iring*iring)/(3*ns*ns)
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))
	}

	return phi * 180 / math.Pi, math.Asin(z) * 180 / math.Pi
}

// isqrt returns floor(sqrt(v)) exactly, correcting the float64
// estimate near perfect squares.
func isqrt(v int64) int64 {
	s := int64(math.Sqrt(float64(v)))
	for s > 0 && s*s > v {
		s--
	}
	for (s+1)*(s+1) <= v {
		s++
	}

	return s
}
