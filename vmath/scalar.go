package vmath

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to the unit interval
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Lerp interpolates between a and b, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothStep is the cubic Hermite ease between edges e0 and e1.
// Returns 0 below e0, 1 above e1, degenerate edges collapse to a step.
func SmoothStep(e0, e1, x float64) float64 {
	if e0 == e1 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}
