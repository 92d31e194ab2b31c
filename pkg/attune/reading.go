package attune

import "time"

// Reading is the structured affect result for one reflection.
type Reading struct {
	ID        string
	Timestamp time.Time

	// Primary, Secondary, and Tertiary form a validated path through the
	// emotion wheel: Secondary always exists under Primary, and Tertiary under
	// the pair.
	Primary   string
	Secondary string
	Tertiary  string

	// Valence and Arousal locate the reading in circumplex space, both in
	// [0,1].
	Valence float64
	Arousal float64

	// EmotionValence is how the writer feels; EventValence is how the
	// described event went. The two diverge on reflections like a promotion
	// that brings no joy.
	EmotionValence float64
	EventValence   float64

	Domain   DomainLabel
	Control  ControlLabel
	Polarity PolarityLabel

	// Confidence is in [0,1]; Category buckets it into "low", "medium", or
	// "high".
	Confidence         float64
	ConfidenceCategory string

	// Flags names the detectors that fired ("negation", "sarcasm",
	// "contrast", "profanity", "no_probabilities", "primary_overridden").
	Flags []string

	// RuleTrace records each precedence rule in application order, fired or
	// not.
	RuleTrace []RuleStep
}

// DomainLabel is the resolved life-domain with an optional secondary domain
// and how dominant the primary is, in [0.5, 1.0].
type DomainLabel struct {
	Primary      string
	Secondary    string
	MixtureRatio float64
	Confidence   float64
}

// ControlLabel is the writer's perceived agency: "low", "medium", or "high".
type ControlLabel struct {
	Level      string
	Confidence float64
}

// PolarityLabel states whether the described event happened: "happened",
// "did_not_happen", "hypothetical", or "none".
type PolarityLabel struct {
	Value      string
	Confidence float64
}

// RuleStep is one precedence-rule application.
type RuleStep struct {
	Rule        string
	Triggered   bool
	Before      map[string]float64
	After       map[string]float64
	Explanation string
}
