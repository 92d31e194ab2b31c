package model

// DualValence carries two independently computed valence channels: the
// objective valence of what happened and the subjective valence of how the
// writer reports feeling about it. The channels are never merged here;
// downstream consumers choose which to use, which is what lets the system
// represent "objectively good outcome, subjectively bad feeling".
type DualValence struct {
	EventValence      float64 `json:"event_valence"`
	EmotionValence    float64 `json:"emotion_valence"`
	EventConfidence   float64 `json:"event_confidence"`
	EmotionConfidence float64 `json:"emotion_confidence"`
	Explanation       string  `json:"explanation"`
}
