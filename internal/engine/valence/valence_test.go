package valence

import (
	"math"
	"testing"

	"github.com/fernwell/attune/internal/engine/clause"
	"github.com/fernwell/attune/internal/engine/features"
)

func compute(text string) (event, emotion float64) {
	fs := features.Extract(text)
	clauses := clause.Segment(text)
	dv := Compute(text, fs, clauses)
	return dv.EventValence, dv.EmotionValence
}

func TestComputeEmptyIsNeutral(t *testing.T) {
	event, emotion := compute("")
	if event != 0.5 || emotion != 0.5 {
		t.Errorf("empty text = (%v, %v), want (0.5, 0.5)", event, emotion)
	}
}

// A promotion that brings no joy: the event channel must stay high while the
// emotion channel collapses. This divergence is the whole point of keeping two
// channels.
func TestComputePromotionButEmpty(t *testing.T) {
	text := "Got promoted today, but I feel so empty inside"
	event, emotion := compute(text)

	if event < 0.70 {
		t.Errorf("event valence = %v, want >= 0.70", event)
	}
	if math.Abs(event-0.95) > 1e-9 {
		t.Errorf("event valence = %v, want 0.95 (achievement from neutral, ceiling)", event)
	}
	if emotion > 0.40 {
		t.Errorf("emotion valence = %v, want <= 0.40", emotion)
	}
	if emotion < 0.25-1e-9 {
		t.Errorf("emotion valence = %v, below the negative-signal floor", emotion)
	}
}

func TestComputeEventDeltas(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"achievement", "I passed the review", 0.95},
		{"delivery", "Finally shipped the feature", 0.85},
		{"ritual completion", "I meditated before breakfast", 0.70},
		{"failure floor", "I failed the exam and everything went wrong", 0.25},
		{"setback", "The release got delayed again", 0.25},
		{"neutral", "The sky was grey all afternoon", 0.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, _ := compute(tt.text)
			if math.Abs(event-tt.want) > 1e-9 {
				t.Errorf("event valence for %q = %v, want %v", tt.text, event, tt.want)
			}
		})
	}
}

func TestComputeEventNegativeFloor(t *testing.T) {
	// Stacked negative outcomes bottom out at the floor instead of 0.
	event, _ := compute("I failed, everything fell apart, the launch was a big mistake and got worse")
	if math.Abs(event-0.25) > 1e-9 {
		t.Errorf("event valence = %v, want floor 0.25", event)
	}
}

func TestComputeEmotionFatigue(t *testing.T) {
	_, emotion := compute("Exhausted and drained, nothing else to say")
	// Two fatigue cues plus the lexicon hit push well below the floor.
	if math.Abs(emotion-0.25) > 1e-9 {
		t.Errorf("emotion valence = %v, want 0.25", emotion)
	}
}

func TestComputePhysioDistressFloor(t *testing.T) {
	_, emotion := compute("Heart racing, I feel empty and hollow, everything is awful")
	if emotion < 0.30-1e-9 {
		t.Errorf("emotion valence = %v, below physio-distress floor 0.30", emotion)
	}
}

func TestComputePositiveLexicon(t *testing.T) {
	_, emotion := compute("I feel grateful and calm tonight")
	if emotion <= 0.5 {
		t.Errorf("emotion valence = %v, want > 0.5 for positive lexicon", emotion)
	}
}

func TestComputeConfidencesBounded(t *testing.T) {
	texts := []string{
		"",
		"Got promoted today, but I feel so empty inside",
		"I failed, everything fell apart, I feel miserable, hopeless, lonely, ashamed and numb",
	}
	for _, text := range texts {
		fs := features.Extract(text)
		dv := Compute(text, fs, clause.Segment(text))
		for name, c := range map[string]float64{
			"event": dv.EventConfidence, "emotion": dv.EmotionConfidence,
		} {
			if c < 0 || c > 0.9 {
				t.Errorf("%s confidence for %q = %v, want within [0, 0.9]", name, text, c)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	text := "Got promoted today, but I feel so empty inside"
	e1, m1 := compute(text)
	e2, m2 := compute(text)
	if e1 != e2 || m1 != m2 {
		t.Errorf("Compute not deterministic: (%v, %v) vs (%v, %v)", e1, m1, e2, m2)
	}
}
