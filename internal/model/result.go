package model

import "time"

// ConfidenceBucket is the categorical confidence band.
type ConfidenceBucket string

const (
	ConfidenceLow    ConfidenceBucket = "low"
	ConfidenceMedium ConfidenceBucket = "medium"
	ConfidenceHigh   ConfidenceBucket = "high"
)

// RuleTrace records one precedence-rule application. Every rule emits a trace
// entry whether or not it fired, so a score can be replayed forensically.
type RuleTrace struct {
	Rule        string             `json:"rule"`
	Triggered   bool               `json:"triggered"`
	Before      map[string]float64 `json:"before,omitempty"`
	After       map[string]float64 `json:"after,omitempty"`
	Explanation string             `json:"explanation"`
}

// EnrichmentResult is the structured affect reading produced once per
// reflection. It is immutable after return and serializable as a flat record.
//
// Invariant: if Secondary is non-empty it exists under Primary in the
// taxonomy; if Tertiary is non-empty, Secondary is also non-empty and
// Tertiary exists under (Primary, Secondary). All numeric fields are clamped
// into [0,1] before return.
type EnrichmentResult struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`

	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Tertiary  string `json:"tertiary,omitempty"`

	Valence        float64 `json:"valence"`
	Arousal        float64 `json:"arousal"`
	EmotionValence float64 `json:"emotion_valence"`
	EventValence   float64 `json:"event_valence"`

	Domain   DomainLabel   `json:"domain"`
	Control  ControlLabel  `json:"control"`
	Polarity PolarityLabel `json:"polarity"`

	Confidence         float64          `json:"confidence"`
	ConfidenceCategory ConfidenceBucket `json:"confidence_category"`

	Flags     []string    `json:"flags,omitempty"`
	RuleTrace []RuleTrace `json:"rule_trace,omitempty"`
}
