// Package clamp bounds numeric outputs into their documented ranges. No
// component may return an out-of-range valence, arousal, confidence, or
// mixture ratio, so every producer clamps before returning.
package clamp

// Unit clamps v into [0, 1].
func Unit(v float64) float64 {
	return Range(0, 1, v)
}

// Range clamps v into [lo, hi].
func Range(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
