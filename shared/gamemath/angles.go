package gamemath

import "math"

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// NormalizeDelta wraps a rotation delta into (-π, π].
func NormalizeDelta(delta float64) float64 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

// ClampAngle constrains an angle to [min, max]. A range with min > max
// wraps across 0 (e.g. min=270°, max=90°); an angle outside a wrapped
// range snaps to whichever bound is angularly closer, measured as the
// smaller of the direct and wrap-around distances.
func ClampAngle(angle, min, max float64) float64 {
	a := NormalizeAngle(angle)

	if min <= max {
		if a < min {
			return min
		}
		if a > max {
			return max
		}
		return a
	}

	// Wrapped range: membership in either sub-interval keeps the angle.
	if a >= min || a <= max {
		return a
	}

	distToMin := math.Min(math.Abs(a-min), math.Abs(a-(min-2*math.Pi)))
	distToMax := math.Min(math.Abs(a-max), math.Abs(a-(max+2*math.Pi)))
	if distToMin <= distToMax {
		return min
	}
	return max
}
