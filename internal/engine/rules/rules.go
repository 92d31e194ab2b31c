// Package rules applies the fixed, ordered list of override rules on top of
// the selector's output. All five rules run unconditionally in order (later
// rules see the output of earlier ones) and every rule emits a trace entry
// with before/after values whether or not it fired, so any score can be
// replayed forensically.
package rules

import (
	"fmt"
	"regexp"

	"github.com/fernwell/attune/internal/clamp"
	"github.com/fernwell/attune/internal/engine/adjust"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/model"
)

// State is the mutable working copy the rules transform. The engine builds
// one per call; nothing here is shared.
type State struct {
	Text     string
	Features model.FeatureSet

	Scores  adjust.Vector
	Primary string

	EventValence   float64
	EmotionValence float64
	Arousal        float64

	Control model.ControlLevel
}

const (
	sarcasmCandidateBoost = 1.25
	sarcasmEventFloor     = 0.70
	sarcasmEmotionCap     = 0.35

	fatigueDrop       = 0.20
	fatigueDropHeavy  = 0.25 // two or more fatigue cues
	fatigueFloor      = 0.10
	fatigueAnxietyCap = 0.65

	physioLift = 0.10
	physioCap  = 0.90

	angryProximity = 0.80
	angryBoost     = 1.20
	angryEventMax  = 0.45

	uncertaintyLo = 0.30
	uncertaintyHi = 0.70
)

var anxietyTerms = regexp.MustCompile(`(?i)\b(anxious|anxiety|worried|worry|nervous|panic\w*)\b`)

type rule struct {
	name  string
	apply func(*State) (triggered bool, before, after map[string]float64, explanation string)
}

var ordered = []rule{
	{"sarcasm_override", sarcasmOverride},
	{"fatigue_dampener", fatigueDampener},
	{"physio_distress_boost", physioDistressBoost},
	{"angry_alignment", angryAlignment},
	{"uncertainty_normalizer", uncertaintyNormalizer},
}

// Apply runs the five rules in their fixed order and returns one trace entry
// per rule.
func Apply(st *State) []model.RuleTrace {
	traces := make([]model.RuleTrace, 0, len(ordered))
	for _, r := range ordered {
		triggered, before, after, explanation := r.apply(st)
		traces = append(traces, model.RuleTrace{
			Rule:        r.name,
			Triggered:   triggered,
			Before:      before,
			After:       after,
			Explanation: explanation,
		})
	}
	return traces
}

// sarcasmOverride fires on the full sarcastic-praise signature: a sarcasm
// cue, surface praise, and a negative metaphor together. The event was fine;
// the feeling was not.
func sarcasmOverride(st *State) (bool, map[string]float64, map[string]float64, string) {
	fs := st.Features
	if !(fs.SarcasmCue.Present && fs.Praise.Present && fs.NegMetaphor.Present) {
		return false, nil, nil, "sarcastic-praise signature absent"
	}

	before := map[string]float64{
		"event_valence":   st.EventValence,
		"emotion_valence": st.EmotionValence,
		"score_sad":       st.Scores[taxonomy.PrimarySad],
		"score_angry":     st.Scores[taxonomy.PrimaryAngry],
		"score_fearful":   st.Scores[taxonomy.PrimaryFearful],
	}

	st.Scores[taxonomy.PrimarySad] *= sarcasmCandidateBoost
	st.Scores[taxonomy.PrimaryAngry] *= sarcasmCandidateBoost
	st.Scores[taxonomy.PrimaryFearful] *= sarcasmCandidateBoost
	st.Scores.Normalize()
	st.Primary = argmax(st.Scores)

	if st.EventValence < sarcasmEventFloor {
		st.EventValence = sarcasmEventFloor
	}
	if st.EmotionValence > sarcasmEmotionCap {
		st.EmotionValence = sarcasmEmotionCap
	}

	after := map[string]float64{
		"event_valence":   st.EventValence,
		"emotion_valence": st.EmotionValence,
		"score_sad":       st.Scores[taxonomy.PrimarySad],
		"score_angry":     st.Scores[taxonomy.PrimaryAngry],
		"score_fearful":   st.Scores[taxonomy.PrimaryFearful],
	}
	return true, before, after, "sarcastic praise over a negative metaphor: boosted negative candidates, floored event valence, capped emotion valence"
}

// fatigueDampener lowers arousal when fatigue cues are present. Exhaustion
// reads as deactivation even when the words are loud.
func fatigueDampener(st *State) (bool, map[string]float64, map[string]float64, string) {
	fs := st.Features
	if !fs.Fatigue.Present {
		return false, nil, nil, "no fatigue cues"
	}

	before := map[string]float64{"arousal": st.Arousal}

	drop := fatigueDrop
	if fs.Fatigue.Count >= 2 {
		drop = fatigueDropHeavy
	}
	st.Arousal -= drop
	if st.Arousal < fatigueFloor {
		st.Arousal = fatigueFloor
	}
	if anxietyTerms.MatchString(st.Text) && st.Arousal > fatigueAnxietyCap {
		st.Arousal = fatigueAnxietyCap
	}

	after := map[string]float64{"arousal": st.Arousal}
	return true, before, after, fmt.Sprintf("%d fatigue cue(s): arousal lowered by %.2f", fs.Fatigue.Count, drop)
}

// physioDistressBoost raises arousal for bodily distress signals, but only
// when fatigue is absent; a tired body is not an activated one.
func physioDistressBoost(st *State) (bool, map[string]float64, map[string]float64, string) {
	fs := st.Features
	if !fs.PhysioDistress.Present || fs.Fatigue.Present {
		return false, nil, nil, "no physio distress, or fatigue takes precedence"
	}

	before := map[string]float64{"arousal": st.Arousal}
	st.Arousal += physioLift
	if st.Arousal > physioCap {
		st.Arousal = physioCap
	}
	after := map[string]float64{"arousal": st.Arousal}
	return true, before, after, "physiological distress without fatigue: arousal raised"
}

// angryAlignment distinguishes active anger from passive sadness: when angry
// is already close to the top, the event went badly, and the writer retains
// agency, the anger reading wins.
func angryAlignment(st *State) (bool, map[string]float64, map[string]float64, string) {
	top := st.Scores[argmax(st.Scores)]
	angry := st.Scores[taxonomy.PrimaryAngry]

	if !(angry >= angryProximity*top &&
		st.EventValence < angryEventMax &&
		(st.Control == model.ControlMedium || st.Control == model.ControlHigh)) {
		return false, nil, nil, "anger not competitive, event not negative, or agency too low"
	}

	before := map[string]float64{"score_angry": angry}
	st.Scores[taxonomy.PrimaryAngry] *= angryBoost
	st.Scores.Normalize()
	st.Primary = argmax(st.Scores)
	after := map[string]float64{"score_angry": st.Scores[taxonomy.PrimaryAngry]}
	return true, before, after, "competitive anger with retained agency over a negative event: angry boosted"
}

// uncertaintyNormalizer pulls emotion valence toward neutral in proportion to
// hedge density: a hedged feeling is a muted feeling.
func uncertaintyNormalizer(st *State) (bool, map[string]float64, map[string]float64, string) {
	h := st.Features.Hedge.Count
	if h == 0 {
		return false, nil, nil, "no hedge markers"
	}

	pull := 0.15
	switch {
	case h >= 3:
		pull = 0.25
	case h == 2:
		pull = 0.20
	}

	before := map[string]float64{"emotion_valence": st.EmotionValence}
	st.EmotionValence += (0.5 - st.EmotionValence) * pull
	st.EmotionValence = clamp.Range(uncertaintyLo, uncertaintyHi, st.EmotionValence)
	after := map[string]float64{"emotion_valence": st.EmotionValence}
	return true, before, after, fmt.Sprintf("%d hedge(s): emotion valence pulled %.0f%% toward neutral", h, pull*100)
}

func argmax(scores adjust.Vector) string {
	best := taxonomy.CanonicalPrimaries[0]
	for _, p := range taxonomy.CanonicalPrimaries[1:] {
		if scores[p] > scores[best] {
			best = p
		}
	}
	return best
}
