// Package confidence aggregates agreement signals from the rest of the
// pipeline into one scalar plus a categorical bucket.
package confidence

import (
	"github.com/fernwell/attune/internal/clamp"
	"github.com/fernwell/attune/internal/engine/adjust"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/model"
)

// Component weights. The top-2 gap carries the most signal; external reranker
// agreement and context sub-confidences split the rest.
const (
	gapWeight       = 0.30
	agreementWeight = 0.25
	contextWeight   = 0.25
	valenceWeight   = 0.20

	// A gap of 0.4 between the top two candidates is treated as decisive.
	decisiveGap = 0.40
)

// Bucket thresholds.
const (
	mediumThreshold = 0.45
	highThreshold   = 0.70
)

// Score combines the probability gap between the top two candidates, external
// reranker agreement with the chosen primary, and the sub-confidences from
// the context inferencers and valence channels. rerankerPrimary may be empty
// (no external reranker), which reads as neutral agreement.
func Score(scores adjust.Vector, chosen, rerankerPrimary string,
	ctx model.ContextLabels, dv model.DualValence) (float64, model.ConfidenceBucket) {

	gap := clamp.Unit(topTwoGap(scores) / decisiveGap)

	agreement := 0.5
	switch rerankerPrimary {
	case "":
	case chosen:
		agreement = 1.0
	default:
		agreement = 0.0
	}

	context := (ctx.Domain.Confidence + ctx.Control.Confidence + ctx.Polarity.Confidence) / 3
	valence := (dv.EventConfidence + dv.EmotionConfidence) / 2

	score := clamp.Unit(gapWeight*gap + agreementWeight*agreement +
		contextWeight*context + valenceWeight*valence)

	return score, bucket(score)
}

func bucket(score float64) model.ConfidenceBucket {
	switch {
	case score >= highThreshold:
		return model.ConfidenceHigh
	case score >= mediumThreshold:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

func topTwoGap(scores adjust.Vector) float64 {
	var top, second float64
	for _, p := range taxonomy.CanonicalPrimaries {
		s := scores[p]
		if s > top {
			top, second = s, top
		} else if s > second {
			second = s
		}
	}
	return top - second
}
