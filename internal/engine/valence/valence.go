// Package valence computes the two never-merged valence channels: what
// happened (event) and how the writer feels about it (emotion).
package valence

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fernwell/attune/internal/clamp"
	"github.com/fernwell/attune/internal/engine/clause"
	"github.com/fernwell/attune/internal/model"
)

const (
	neutral = 0.5

	// Hand-tuned soft bounds, preserved as-is from calibration.
	eventCeiling     = 0.95
	eventFloor       = 0.25
	emotionFloorDist = 0.30 // floor when physio-distress is present
	emotionFloor     = 0.25 // floor when any negative signal fired

	negMetaphorPenalty        = 0.30
	negMetaphorPenaltyReduced = 0.20 // physio-distress already carries the weight
	contrastAmplifier         = 1.15
	fatiguePenalty            = 0.15
	lexiconDelta              = 0.25
)

// Event pattern deltas. Positive and negative outcomes are additive from the
// 0.5 baseline.
var eventPatterns = []struct {
	name    string
	delta   float64
	pattern *regexp.Regexp
}{
	{"achievement", 0.45, regexp.MustCompile(`(?i)\b(promot\w+|got the job|passed|won\b|achieved|award|accepted (?:into|to)|milestone)\b`)},
	{"delivery", 0.35, regexp.MustCompile(`(?i)\b(shipped|launched|delivered|finished|completed|submitted)\b`)},
	{"progress", 0.25, regexp.MustCompile(`(?i)\b(progress|improv\w+|getting better|moving forward|closer to|on track)\b`)},
	{"praise", 0.25, regexp.MustCompile(`(?i)\b(praised|complimented|good job|well done|congratulated)\b`)},
	{"recognition", 0.20, regexp.MustCompile(`(?i)\b(recognized|noticed|appreciated|thanked|shout ?out)\b`)},
	{"ritual_completion", 0.20, regexp.MustCompile(`(?i)\b(meditated|journaled|worked out|kept (?:my|the) streak|did my (?:routine|practice)|stuck to (?:my|the) (?:routine|habit))\b`)},
	{"failure", -0.45, regexp.MustCompile(`(?i)\b(failed|rejected|fired|lost the|broke up|bombed)\b`)},
	{"negative_outcome", -0.35, regexp.MustCompile(`(?i)\b(went wrong|fell apart|messed up|screwed up|big mistake|got worse)\b`)},
	{"setback", -0.25, regexp.MustCompile(`(?i)\b(setback|delayed|pushed back|blocked|stalled|slipped)\b`)},
}

// Per-clause emotion lexicon. Each category contributes ±0.25 scaled by the
// clause's share of total weight.
var (
	positiveLexicon = regexp.MustCompile(`(?i)\b(happy|glad|excited|grateful|proud|relieved|calm|content|hopeful|joy\w*|at peace)\b`)
	negativeLexicon = regexp.MustCompile(`(?i)\b(empty|sad|anxious|scared|angry|frustrated|miserable|hopeless|lonely|ashamed|drained|numb|overwhelmed|awful|terrible)\b`)
)

// Compute derives both valence channels from the text, its feature set, and
// its weighted clauses. Total: empty input returns the neutral (0.5, 0.5)
// pair with low confidence.
func Compute(text string, fs model.FeatureSet, clauses []model.Clause) model.DualValence {
	event, eventEvidence, eventNotes := computeEvent(text)
	emotion, emotionEvidence, emotionNotes := computeEmotion(fs, clauses)

	return model.DualValence{
		EventValence:      event,
		EmotionValence:    emotion,
		EventConfidence:   math.Min(0.9, 0.3+0.15*float64(eventEvidence)),
		EmotionConfidence: math.Min(0.9, 0.35+0.12*float64(emotionEvidence)),
		Explanation:       joinNotes(eventNotes, emotionNotes),
	}
}

func computeEvent(text string) (score float64, evidence int, notes []string) {
	score = neutral
	negativeFired := false

	for _, ep := range eventPatterns {
		n := len(ep.pattern.FindAllString(text, -1))
		if n == 0 {
			continue
		}
		score += ep.delta
		evidence += n
		if ep.delta < 0 {
			negativeFired = true
		}
		notes = append(notes, fmt.Sprintf("event:%s%+.2f", ep.name, ep.delta))
	}

	if score > eventCeiling {
		score = eventCeiling
	}
	if negativeFired && score < eventFloor {
		score = eventFloor
	}
	return clamp.Unit(score), evidence, notes
}

func computeEmotion(fs model.FeatureSet, clauses []model.Clause) (score float64, evidence int, notes []string) {
	score = neutral
	negativeFired := false
	contrastive := false
	for _, c := range clauses {
		if c.HasContrastBefore {
			contrastive = true
			break
		}
	}

	if fs.NegMetaphor.Present {
		penalty := negMetaphorPenalty
		if fs.PhysioDistress.Present {
			penalty = negMetaphorPenaltyReduced
		}
		if contrastive {
			penalty *= contrastAmplifier
		}
		score -= penalty
		evidence += fs.NegMetaphor.Count
		negativeFired = true
		notes = append(notes, fmt.Sprintf("emotion:neg_metaphor-%.2f", penalty))
	}

	if fs.Fatigue.Present {
		penalty := fatiguePenalty * float64(fs.Fatigue.Count)
		score -= penalty
		evidence += fs.Fatigue.Count
		negativeFired = true
		notes = append(notes, fmt.Sprintf("emotion:fatigue-%.2f", penalty))
	}

	total := clause.TotalWeight(clauses)
	if total > 0 {
		for _, c := range clauses {
			var delta float64
			if positiveLexicon.MatchString(c.Text) {
				delta += lexiconDelta
			}
			if negativeLexicon.MatchString(c.Text) {
				delta -= lexiconDelta
				negativeFired = true
			}
			if delta == 0 {
				continue
			}
			score += delta * (c.Weight / total)
			evidence++
			notes = append(notes, fmt.Sprintf("emotion:clause%d%+.2f(w=%.2g)", c.Position, delta, c.Weight))
		}
	}

	switch {
	case fs.PhysioDistress.Present && score < emotionFloorDist:
		score = emotionFloorDist
	case negativeFired && score < emotionFloor:
		score = emotionFloor
	}
	return clamp.Unit(score), evidence, notes
}

func joinNotes(event, emotion []string) string {
	all := append(append([]string(nil), event...), emotion...)
	return strings.Join(all, " ")
}
