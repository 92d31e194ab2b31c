// Package engine orchestrates the enrichment pipeline: features → clauses →
// dual valence → context labels → probability adjusters → emotion selection →
// precedence rules → confidence → valence/arousal mapping. The whole chain is
// pure and synchronous; given identical inputs it returns identical output,
// so an Engine is safe for concurrent use without locking.
package engine

import (
	"fmt"
	"math"

	"github.com/fernwell/attune/internal/clamp"
	"github.com/fernwell/attune/internal/engine/adjust"
	"github.com/fernwell/attune/internal/engine/clause"
	"github.com/fernwell/attune/internal/engine/confidence"
	"github.com/fernwell/attune/internal/engine/features"
	"github.com/fernwell/attune/internal/engine/infer"
	"github.com/fernwell/attune/internal/engine/rules"
	"github.com/fernwell/attune/internal/engine/selector"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/engine/valence"
	"github.com/fernwell/attune/internal/engine/vamap"
	"github.com/fernwell/attune/internal/model"
)

// probSumTolerance bounds how far an external probability vector's sum may
// drift from 1 before it is rejected instead of renormalized.
const probSumTolerance = 0.05

// Engine holds the read-only taxonomy handle. Construct once at startup.
type Engine struct {
	tax *taxonomy.Taxonomy
}

// New creates an Engine over the given taxonomy. A nil taxonomy falls back to
// the built-in wheel.
func New(tax *taxonomy.Taxonomy) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{tax: tax}
}

// Taxonomy returns the engine's wheel handle.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// Enrich converts one reflection into a structured affect reading. It never
// fails on malformed or empty text (absence of signal degrades to neutral
// defaults), but a malformed probability vector is the caller's error and is
// surfaced.
func (e *Engine) Enrich(r model.Reflection) (model.EnrichmentResult, error) {
	probs, usedUniform, err := e.normalizeProbabilities(r.Probabilities)
	if err != nil {
		return model.EnrichmentResult{}, err
	}

	var flags []string
	if usedUniform {
		flags = append(flags, "no_probabilities")
	}

	fs := features.Extract(r.Text)
	clauses := clause.Segment(r.Text)
	dv := valence.Compute(r.Text, fs, clauses)
	ctx := model.ContextLabels{
		Domain:   infer.Domain(fs),
		Control:  infer.Control(fs),
		Polarity: infer.Polarity(r.Text, fs),
	}

	adjusted, negated := adjust.Negation(r.Text, probs)
	if negated {
		flags = append(flags, "negation")
	}
	adjusted, sarcastic := adjust.Sarcasm(r.Text, adjusted)
	if sarcastic {
		flags = append(flags, "sarcasm")
	}
	if hasContrast(clauses) {
		flags = append(flags, "contrast")
	}

	sel := selector.Select(adjusted, dv, ctx, e.tax, r.Similarities)

	band := vamap.BandFor(sel.Primary)
	_, midArousal := band.Mid()

	st := &rules.State{
		Text:           r.Text,
		Features:       fs,
		Scores:         sel.Scores,
		Primary:        sel.Primary,
		EventValence:   dv.EventValence,
		EmotionValence: dv.EmotionValence,
		Arousal:        midArousal,
		Control:        ctx.Control.Level,
	}
	trace := rules.Apply(st)

	primary, secondary, tertiary := sel.Primary, sel.Secondary, sel.Tertiary
	arousal := st.Arousal
	if st.Primary != sel.Primary {
		flags = append(flags, "primary_overridden")
		primary = st.Primary
		resel := selector.Select(st.Scores, dv, ctx, e.tax, r.Similarities)
		if resel.Primary == primary {
			secondary, tertiary = resel.Secondary, resel.Tertiary
		} else {
			// Keep the rule engine's pick; descend deterministically.
			secondary = firstOrEmpty(e.tax.Secondaries(primary))
			tertiary = firstOrEmpty(e.tax.Tertiaries(primary, secondary))
		}
		// Rebase the rule-adjusted arousal into the new primary's band.
		_, newMid := vamap.BandFor(primary).Mid()
		arousal = newMid + (st.Arousal - midArousal)
	}

	// Hierarchy invariant: repair rather than return an invalid triple.
	primary, secondary, tertiary, err = e.tax.Repair(primary, secondary, tertiary)
	if err != nil {
		return model.EnrichmentResult{}, fmt.Errorf("engine: %w", err)
	}

	conf, bucket := confidence.Score(st.Scores, primary, r.RerankerPrimary, ctx, dv)

	midValence, _ := vamap.BandFor(primary).Mid()
	mappedValence, mappedArousal := vamap.Map(vamap.Input{
		Primary:      primary,
		Secondary:    secondary,
		Text:         r.Text,
		Valence:      midValence,
		Arousal:      arousal,
		DriverScores: r.DriverScores,
		Timestamp:    r.Timestamp,
		EventValence: st.EventValence,
		Confidence:   conf,
		History:      r.History,
	})

	mappedArousal, sweary := adjust.Profanity(r.Text, mappedArousal)
	if sweary {
		flags = append(flags, "profanity")
	}

	return model.EnrichmentResult{
		ID:                 r.ID,
		Timestamp:          r.Timestamp,
		Primary:            primary,
		Secondary:          secondary,
		Tertiary:           tertiary,
		Valence:            clamp.Unit(mappedValence),
		Arousal:            clamp.Unit(mappedArousal),
		EmotionValence:     clamp.Unit(st.EmotionValence),
		EventValence:       clamp.Unit(st.EventValence),
		Domain:             ctx.Domain,
		Control:            ctx.Control,
		Polarity:           ctx.Polarity,
		Confidence:         clamp.Unit(conf),
		ConfidenceCategory: bucket,
		Flags:              flags,
		RuleTrace:          trace,
	}, nil
}

// EnrichBatch enriches a slice of reflections in order.
func (e *Engine) EnrichBatch(rs []model.Reflection) ([]model.EnrichmentResult, error) {
	results := make([]model.EnrichmentResult, 0, len(rs))
	for _, r := range rs {
		res, err := e.Enrich(r)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// normalizeProbabilities validates the external vector: keys must be
// canonical primaries, values non-negative, and the sum within tolerance of
// 1 (then renormalized exactly). A nil or empty vector degrades to uniform.
func (e *Engine) normalizeProbabilities(m map[string]float64) (adjust.Vector, bool, error) {
	if len(m) == 0 {
		v := make(adjust.Vector, len(taxonomy.CanonicalPrimaries))
		uniform := 1.0 / float64(len(taxonomy.CanonicalPrimaries))
		for _, p := range taxonomy.CanonicalPrimaries {
			v[p] = uniform
		}
		return v, true, nil
	}

	v := make(adjust.Vector, len(taxonomy.CanonicalPrimaries))
	var sum float64
	for key, val := range m {
		if !e.tax.HasPrimary(key) {
			return nil, false, fmt.Errorf("engine: probability for unknown primary %q", key)
		}
		if val < 0 || math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, false, fmt.Errorf("engine: invalid probability %v for %q", val, key)
		}
		v[key] = val
		sum += val
	}
	if math.Abs(sum-1) > probSumTolerance {
		return nil, false, fmt.Errorf("engine: probability vector sums to %.3f, want 1", sum)
	}
	v.Normalize()
	return v, false, nil
}

func hasContrast(clauses []model.Clause) bool {
	for _, c := range clauses {
		if c.HasContrastBefore {
			return true
		}
	}
	return false
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
