// Package adjust transforms an externally supplied primary-emotion
// probability vector with deterministic, order-sensitive corrections:
// negation first, then sarcasm. Profanity runs after valence/arousal are
// computed, since it adjusts arousal directly rather than the vector.
package adjust

import "github.com/fernwell/attune/internal/engine/taxonomy"

// Vector is a probability distribution over the six canonical primaries.
// Adjusters never mutate their input; each returns a fresh vector.
type Vector map[string]float64

// Clone copies a vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Normalize rescales the vector to sum to 1. A zero vector becomes uniform
// rather than staying degenerate.
func (v Vector) Normalize() {
	var sum float64
	for _, p := range taxonomy.CanonicalPrimaries {
		sum += v[p]
	}
	if sum <= 0 {
		uniform := 1.0 / float64(len(taxonomy.CanonicalPrimaries))
		for _, p := range taxonomy.CanonicalPrimaries {
			v[p] = uniform
		}
		return
	}
	for _, p := range taxonomy.CanonicalPrimaries {
		v[p] /= sum
	}
}
