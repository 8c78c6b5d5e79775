package animation

// LinearCurve leaves progress unchanged.
func LinearCurve(t float64) float64 { return t }

// EaseOut decelerates toward the end, matching CSS cubic-bezier(0, 0, 0.2, 1).
// Inset reveals, conceals and scroll settles use it.
var EaseOut = CubicBezier(0, 0, 0.2, 1)

// CubicBezier returns the timing function through (0,0), (x1,y1), (x2,y2)
// and (1,1), as CSS defines it. The x control values must lie in [0, 1],
// which makes x(u) monotonic and lets a bisection find u for a given t.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		lo, hi := 0.0, 1.0
		u := t
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, u)
			if x > t {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// bezier evaluates one coordinate of the curve at parameter u.
func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}
