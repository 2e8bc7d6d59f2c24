package skycrs

import "math"

// mollweide is the equal-area pseudocylindrical transform on the unit
// sphere:
//
//	x = (2*sqrt(2)/pi) * lon * cos(theta)
//	y = sqrt(2) * sin(theta)
//
// where theta solves 2*theta + sin(2*theta) = pi*sin(lat). Planar
// points outside the 2*sqrt(2) x sqrt(2) ellipse invert to NaN.
type mollweide struct{}

func (mollweide) Project(lat, lon float64) (x, y float64) {
	theta := mollTheta(lat)
	x = 2 * math.Sqrt2 / math.Pi * lon * math.Cos(theta)
	y = math.Sqrt2 * math.Sin(theta)

	return x, y
}

func (mollweide) Inverse(x, y float64) (lat, lon float64) {
	s := y / math.Sqrt2
	if math.Abs(s) > 1 {
		return math.NaN(), math.NaN()
	}
	theta := math.Asin(s)

	arg := (2*theta + math.Sin(2*theta)) / math.Pi
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	lat = math.Asin(arg)

	cos := math.Cos(theta)
	if cos < 1e-12 {
		// The poles collapse every longitude onto one point; only the
		// point itself is invertible.
		if math.Abs(x) > 1e-9 {
			return math.NaN(), math.NaN()
		}

		return lat, 0
	}
	lon = math.Pi * x / (2 * math.Sqrt2 * cos)
	if math.Abs(lon) > math.Pi+1e-9 {
		return math.NaN(), math.NaN()
	}

	return lat, lon
}

// mollTheta solves 2*theta + sin(2*theta) = pi*sin(lat) by Newton
// iteration. Convergence degrades to linear near the poles where the
// derivative vanishes, so the iteration cap is generous.
func mollTheta(lat float64) float64 {
	if math.Abs(lat) >= math.Pi/2 {
		return math.Copysign(math.Pi/2, lat)
	}

	target := math.Pi * math.Sin(lat)
	theta := lat
	for i := 0; i < 100; i++ {
		delta := (2*theta + math.Sin(2*theta) - target) / (2 + 2*math.Cos(2*theta))
		theta -= delta
		if math.Abs(delta) < 1e-13 {
			break
		}
	}

	return theta
}
