package floaty

import "time"

// Curve is a cubic Bezier timing function through (0,0), (X1,Y1), (X2,Y2)
// and (1,1), the model used by CSS timing functions.
type Curve struct {
	X1, Y1, X2, Y2 float64
}

// Standard timing curves.
var (
	Linear    = Curve{X1: 0, Y1: 0, X2: 1, Y2: 1}
	EaseIn    = Curve{X1: 0.42, Y1: 0, X2: 1, Y2: 1}
	EaseOut   = Curve{X1: 0, Y1: 0, X2: 0.58, Y2: 1}
	EaseInOut = Curve{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
)

// bezier1D evaluates one coordinate of the timing curve at parameter s.
func bezier1D(c1, c2, s float64) float64 {
	ms := 1 - s
	return 3*ms*ms*s*c1 + 3*ms*s*s*c2 + s*s*s
}

// bezier1DDeriv is the derivative of bezier1D with respect to s.
func bezier1DDeriv(c1, c2, s float64) float64 {
	ms := 1 - s
	return 3*ms*ms*c1 + 6*ms*s*(c2-c1) + 3*s*s*(1-c2)
}

// At maps linear progress t in [0, 1] to eased progress.
// t is clamped; At(0) == 0 and At(1) == 1 for every curve.
func (c Curve) At(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}

	// Newton iterations first, bisection if the slope is too flat.
	s := t
	for i := 0; i < 8; i++ {
		x := bezier1D(c.X1, c.X2, s) - t
		if x < 1e-9 && x > -1e-9 {
			return bezier1D(c.Y1, c.Y2, s)
		}
		d := bezier1DDeriv(c.X1, c.X2, s)
		if d < 1e-6 && d > -1e-6 {
			break
		}
		s = clamp01(s - x/d)
	}

	lo, hi := 0.0, 1.0
	s = t
	for i := 0; i < 64; i++ {
		x := bezier1D(c.X1, c.X2, s)
		if x < 1e-9+t && x > t-1e-9 {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier1D(c.Y1, c.Y2, s)
}

// Progress returns the eased progress of an animation that started at
// start and lasts d, observed at now. A non-positive duration completes
// immediately.
func (c Curve) Progress(start, now, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return c.At(float64(now-start) / float64(d))
}
