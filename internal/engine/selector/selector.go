// Package selector picks the primary → secondary → tertiary emotion triple.
// The primary comes from reranking the adjusted probability vector with
// context priors; deeper levels are drawn only from the taxonomy's child
// lists. The hierarchy invariant (never an out-of-taxonomy label) is the
// single most important contract here: any failure falls back to the first
// valid child, deterministically, never to an invented label.
package selector

import (
	"github.com/fernwell/attune/internal/engine/adjust"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/model"
)

// Selection is the validated triple plus the reranked primary scores the
// precedence rules and confidence scorer operate on.
type Selection struct {
	Primary   string
	Secondary string
	Tertiary  string
	Scores    adjust.Vector
}

// Select reranks the adjusted probabilities with domain/control/polarity
// priors, then descends the taxonomy. sims optionally scores label paths
// ("sad.depressed", "sad.depressed.empty") from an external embedding
// service; missing entries score zero.
func Select(probs adjust.Vector, dv model.DualValence, ctx model.ContextLabels,
	tax *taxonomy.Taxonomy, sims map[string]float64) Selection {

	scores := rerank(probs, dv, ctx)
	primary := argmax(scores)

	secondary := pickChild(tax.Secondaries(primary), func(s string) float64 {
		return sims[primary+"."+s] + secondaryBias(primary, s, dv, ctx)
	})
	tertiary := pickChild(tax.Tertiaries(primary, secondary), func(t string) float64 {
		return sims[primary+"."+secondary+"."+t]
	})

	// Candidates are drawn from the taxonomy's own child lists, so the triple
	// is valid by construction; Repair guards the invariant regardless.
	p, s, t, err := tax.Repair(primary, secondary, tertiary)
	if err != nil {
		// Unreachable with a canonical vector: argmax only returns wheel
		// primaries. Degrade to the first primary rather than invent.
		p = tax.Primaries()[0]
		s, t = "", ""
	}

	return Selection{Primary: p, Secondary: s, Tertiary: t, Scores: scores}
}

// rerank applies multiplicative context priors and renormalizes.
func rerank(probs adjust.Vector, dv model.DualValence, ctx model.ContextLabels) adjust.Vector {
	out := probs.Clone()

	if ctx.Control.Level == model.ControlLow {
		out[taxonomy.PrimaryFearful] *= 1.15
		out[taxonomy.PrimarySad] *= 1.10
	}
	if ctx.Control.Level == model.ControlHigh && dv.EventValence < 0.45 {
		out[taxonomy.PrimaryAngry] *= 1.10
	}
	if ctx.Polarity.Value == model.PolarityHypothetical {
		out[taxonomy.PrimaryFearful] *= 1.10
	}
	if ctx.Polarity.Value == model.PolarityDidNotHappen {
		out[taxonomy.PrimarySad] *= 1.05
	}
	if ctx.Domain.Primary == model.DomainWork && dv.EventValence >= 0.6 {
		out[taxonomy.PrimaryHappy] *= 1.05
	}
	if dv.EmotionValence <= 0.35 {
		out[taxonomy.PrimaryHappy] *= 0.85
	}
	if dv.EmotionValence >= 0.70 {
		out[taxonomy.PrimaryHappy] *= 1.10
		out[taxonomy.PrimarySad] *= 0.90
	}

	out.Normalize()
	return out
}

// argmax returns the highest-scoring primary, breaking ties by wheel order.
func argmax(scores adjust.Vector) string {
	best := taxonomy.CanonicalPrimaries[0]
	for _, p := range taxonomy.CanonicalPrimaries[1:] {
		if scores[p] > scores[best] {
			best = p
		}
	}
	return best
}

// pickChild scores candidates and returns the best, or the first entry when
// nothing scores above zero. Ties keep the earlier candidate, so the result
// is deterministic for any input.
func pickChild(candidates []string, score func(string) float64) string {
	if len(candidates) == 0 {
		return ""
	}
	best := candidates[0]
	bestScore := score(best)
	for _, c := range candidates[1:] {
		if s := score(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// secondaryBias encodes per-primary context preferences for the secondary
// level. The weights are small nudges on top of external similarity scores,
// not a classifier of their own.
func secondaryBias(primary, secondary string, dv model.DualValence, ctx model.ContextLabels) float64 {
	domain := ctx.Domain.Primary
	control := ctx.Control.Level
	polarity := ctx.Polarity.Value

	switch primary {
	case taxonomy.PrimaryHappy:
		switch secondary {
		case "proud":
			if domain == model.DomainWork || domain == model.DomainStudy {
				return 0.15
			}
		case "accepted":
			if domain == model.DomainSocial || domain == model.DomainRelationships || domain == model.DomainFamily {
				return 0.15
			}
		case "content":
			if control == model.ControlHigh {
				return 0.10
			}
		case "optimistic":
			if polarity == model.PolarityHypothetical {
				return 0.10
			}
		}
	case taxonomy.PrimarySad:
		switch secondary {
		case "vulnerable":
			if control == model.ControlLow {
				return 0.15
			}
		case "lonely":
			if domain == model.DomainSocial || domain == model.DomainRelationships {
				return 0.15
			}
		case "depressed":
			if dv.EmotionValence <= 0.30 {
				return 0.15
			}
		case "guilty":
			if polarity == model.PolarityHappened && dv.EventValence < 0.45 {
				return 0.10
			}
		case "hurt":
			if domain == model.DomainRelationships {
				return 0.10
			}
		}
	case taxonomy.PrimaryAngry:
		switch secondary {
		case "frustrated":
			if control != model.ControlLow {
				return 0.15
			}
		case "humiliated":
			if domain == model.DomainWork && dv.EventValence < 0.45 {
				return 0.15
			}
		case "resentful":
			if domain == model.DomainRelationships || domain == model.DomainFamily {
				return 0.10
			}
		case "distant":
			if dv.EmotionValence <= 0.35 {
				return 0.10
			}
		}
	case taxonomy.PrimaryFearful:
		switch secondary {
		case "helpless":
			if control == model.ControlLow {
				return 0.15
			}
		case "anxious":
			if polarity == model.PolarityHypothetical {
				return 0.15
			}
		case "insecure":
			if domain == model.DomainWork || domain == model.DomainStudy {
				return 0.10
			}
		case "rejected":
			if domain == model.DomainSocial || domain == model.DomainRelationships {
				return 0.10
			}
		}
	case taxonomy.PrimarySurprised:
		switch secondary {
		case "disillusioned":
			if dv.EventValence < 0.45 {
				return 0.15
			}
		case "excited":
			if dv.EventValence >= 0.70 && dv.EmotionValence >= 0.60 {
				return 0.15
			}
		case "moved":
			if domain == model.DomainFamily || domain == model.DomainRelationships {
				return 0.10
			}
		}
	case taxonomy.PrimaryDisgusted:
		switch secondary {
		case "disappointed":
			if dv.EventValence < 0.45 {
				return 0.15
			}
		case "disapproving":
			if control == model.ControlHigh {
				return 0.10
			}
		case "ashamed_of":
			if dv.EmotionValence <= 0.35 {
				return 0.10
			}
		}
	}
	return 0
}
