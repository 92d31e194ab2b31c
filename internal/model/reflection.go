package model

import "time"

// Reflection is one enrichment request: the raw reflection text plus the
// externally supplied model outputs the core consumes but never computes.
type Reflection struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Text      string    `json:"text"`

	// Probabilities is a distribution over the six canonical primaries,
	// summing to 1, produced by an external classifier. Nil means the caller
	// has no model; the engine substitutes a uniform distribution.
	Probabilities map[string]float64 `json:"probabilities,omitempty"`

	// Similarities optionally scores taxonomy label paths (e.g.
	// "sad.depressed", "sad.depressed.empty") from an external embedding
	// service.
	Similarities map[string]float64 `json:"similarities,omitempty"`

	// RerankerPrimary is the primary an external reranker would pick, used
	// only as an agreement signal by the confidence scorer.
	RerankerPrimary string `json:"reranker_primary,omitempty"`

	// DriverScores optionally scores named drivers ("overwhelm", "gratitude"),
	// each in [0,1].
	DriverScores map[string]float64 `json:"driver_scores,omitempty"`

	// History holds prior readings for the same subject, used only for EMA
	// smoothing. Never mutated.
	History []HistoryPoint `json:"history,omitempty"`
}

// HistoryPoint is one prior valence/arousal reading.
type HistoryPoint struct {
	Valence   float64   `json:"valence"`
	Arousal   float64   `json:"arousal"`
	Timestamp time.Time `json:"timestamp"`
}
