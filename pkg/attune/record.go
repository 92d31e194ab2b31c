package attune

import "time"

// Record is a full enrichment request. Use this when you have more than bare
// text: an identifier, external model outputs, or prior readings to smooth
// against. For plain text, use Enrich().
type Record struct {
	// ID identifies the reflection in the caller's system. Optional.
	ID string

	// Timestamp is when the reflection was written. The hour feeds the
	// circadian valence adjustment, so pass the writer's local time. Zero
	// leaves the circadian adjustment off.
	Timestamp time.Time

	// Text is the reflection itself.
	Text string

	// Probabilities is an external classifier's distribution over the six
	// primary emotions (happy, sad, angry, fearful, surprised, disgusted),
	// summing to 1. Nil means no model; a uniform distribution is substituted.
	Probabilities map[string]float64

	// Similarities optionally scores taxonomy label paths such as
	// "sad.depressed" from an external embedding service.
	Similarities map[string]float64

	// RerankerPrimary is the primary an external reranker would pick. Used
	// only as an agreement signal when scoring confidence.
	RerankerPrimary string

	// DriverScores optionally scores named drivers ("overwhelm", "gratitude"),
	// each in [0,1].
	DriverScores map[string]float64

	// History holds prior readings for the same subject, most recent last.
	History []HistoryPoint
}

// HistoryPoint is one prior valence/arousal reading used for smoothing.
type HistoryPoint struct {
	Valence   float64
	Arousal   float64
	Timestamp time.Time
}
