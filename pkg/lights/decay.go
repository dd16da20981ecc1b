package lights

// DecayFunc maps the distance from a light to an intensity multiplier
type DecayFunc func(distance float64) float64

// ConstantDecay ignores distance entirely
func ConstantDecay(k float64) DecayFunc {
	return func(float64) float64 { return k }
}

// InverseSquareDecay falls off as k / d². Distances below one unit are
// clamped so the multiplier never exceeds k.
func InverseSquareDecay(k float64) DecayFunc {
	return func(d float64) float64 {
		if d < 1 {
			return k
		}
		return k / (d * d)
	}
}

// AttenuationDecay is the classic 1 / (c + l·d + q·d²) falloff
func AttenuationDecay(constant, linear, quadratic float64) DecayFunc {
	return func(d float64) float64 {
		denom := constant + linear*d + quadratic*d*d
		if denom <= 0 {
			return 0
		}
		return 1 / denom
	}
}
