// Package classifier supplies primary-emotion probability vectors to the
// enrichment engine. This is the external model boundary from the core's
// point of view: the engine consumes whatever a Provider returns and performs
// no inference of its own. The ONNX-backed provider here is optional; any
// caller with its own classifier can skip this package entirely.
package classifier

import "github.com/fernwell/attune/internal/engine/taxonomy"

// Provider produces a probability distribution over the six canonical
// primaries, summing to 1.
type Provider interface {
	Probabilities(text string) (map[string]float64, error)
	Close() error
}

// Uniform is the no-model fallback provider: every primary is equally likely,
// leaving the lexical pipeline to do all the work.
type Uniform struct{}

// Probabilities returns the flat distribution.
func (Uniform) Probabilities(string) (map[string]float64, error) {
	out := make(map[string]float64, len(taxonomy.CanonicalPrimaries))
	p := 1.0 / float64(len(taxonomy.CanonicalPrimaries))
	for _, primary := range taxonomy.CanonicalPrimaries {
		out[primary] = p
	}
	return out, nil
}

// Close is a no-op.
func (Uniform) Close() error { return nil }
