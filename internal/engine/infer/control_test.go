package infer

import (
	"math"
	"testing"

	"github.com/fernwell/attune/internal/engine/features"
	"github.com/fernwell/attune/internal/model"
)

func TestControlLevels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.ControlLevel
	}{
		{"high agency", "I decided to fix this and I started today", model.ControlHigh},
		{"low agency", "It is out of my hands, completely forced on me", model.ControlLow},
		{"no markers", "The weather turned cold", model.ControlMedium},
		{"mixed markers cancel", "I decided to leave but felt powerless anyway", model.ControlMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := Control(features.Extract(tt.text))
			if label.Level != tt.want {
				t.Errorf("Control(%q).Level = %q, want %q", tt.text, label.Level, tt.want)
			}
		})
	}
}

// Hedged low agency: the hedge pulls the score back toward neutral but not
// past the low threshold, and caps the confidence.
func TestControlHedgedLowAgency(t *testing.T) {
	label := Control(features.Extract("It is out of my hands, maybe it will pass"))
	if label.Level != model.ControlLow {
		t.Fatalf("Level = %q, want low", label.Level)
	}
	if math.Abs(label.Confidence-0.6) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.6 (one marker class, hedge penalty)", label.Confidence)
	}
	if label.Confidence >= 0.85 {
		t.Errorf("Confidence = %v, hedged reading must stay below 0.85", label.Confidence)
	}
}

func TestControlHedgeNeverCrossesNeutral(t *testing.T) {
	// High agency pulled back by hedging lands at or above neutral, never
	// below it.
	label := Control(features.Extract("I guess I decided to try"))
	if label.Level == model.ControlLow {
		t.Errorf("hedged high agency dropped to low")
	}
}

func TestControlConfidenceBounds(t *testing.T) {
	texts := []string{
		"", "I decided", "out of my hands", "maybe",
		"I decided but it was forced, maybe",
	}
	for _, text := range texts {
		label := Control(features.Extract(text))
		if label.Confidence < 0.3 || label.Confidence > 0.9 {
			t.Errorf("Control(%q).Confidence = %v, outside [0.3, 0.9]", text, label.Confidence)
		}
	}
}
