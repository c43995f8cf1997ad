package weave

// clamp01 limits v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep maps v through the cubic Hermite ramp between edge0 and edge1.
// Inputs outside the edges clamp to 0 or 1; they never propagate as failures.
func smoothstep(edge0, edge1, v float64) float64 {
	t := clamp01((v - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
