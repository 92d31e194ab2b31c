// Package vamap maps the final emotion and its cues into continuous
// valence/arousal coordinates: per-primary band, intensity modulation,
// secondary nudges, driver and circadian deltas, event-valence blending at
// low confidence, and optional history smoothing.
package vamap

import (
	"math"
	"regexp"
	"time"

	"github.com/fernwell/attune/internal/clamp"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/model"
)

// Band is the coordinate range characteristic of one primary emotion.
type Band struct {
	ValenceLo, ValenceHi float64
	ArousalLo, ArousalHi float64
}

var bands = map[string]Band{
	taxonomy.PrimaryHappy:     {0.60, 0.95, 0.45, 0.80},
	taxonomy.PrimarySad:       {0.05, 0.35, 0.15, 0.45},
	taxonomy.PrimaryAngry:     {0.10, 0.35, 0.60, 0.95},
	taxonomy.PrimaryFearful:   {0.10, 0.40, 0.55, 0.90},
	taxonomy.PrimarySurprised: {0.40, 0.75, 0.60, 0.95},
	taxonomy.PrimaryDisgusted: {0.10, 0.35, 0.40, 0.70},
}

// neutralBand covers the unreachable case of an unknown primary; mapping
// degrades to the midpoint rather than failing.
var neutralBand = Band{0.4, 0.6, 0.4, 0.6}

// BandFor returns the coordinate band for a primary.
func BandFor(primary string) Band {
	if b, ok := bands[primary]; ok {
		return b
	}
	return neutralBand
}

// Mid returns the band's midpoint coordinates.
func (b Band) Mid() (valence, arousal float64) {
	return (b.ValenceLo + b.ValenceHi) / 2, (b.ArousalLo + b.ArousalHi) / 2
}

// Intensity modifier lexicon: each intensifier hit pushes outward, each
// diminisher pulls inward; the net modifier is clamped to ±0.3.
var (
	intensifiers = regexp.MustCompile(`(?i)\b(so|very|really|extremely|completely|totally|utterly|incredibly|deeply)\b`)
	diminishers  = regexp.MustCompile(`(?i)\b(slightly|a bit|a little|somewhat|barely|mildly|a touch|vaguely)\b`)
)

const (
	intensityStep = 0.10
	intensityMax  = 0.30

	lowConfidenceCutoff = 0.70
	eventBlend          = 0.15
)

// secondary nudges: small coordinate shifts characteristic of the secondary
// emotion within its primary's band.
var secondaryNudges = map[string][2]float64{
	"anxious":    {0, 0.05},
	"content":    {0.03, -0.05},
	"depressed":  {-0.05, -0.05},
	"excited":    {0.05, 0.08},
	"hostile":    {-0.03, 0.07},
	"helpless":   {-0.05, -0.03},
	"proud":      {0.05, 0.03},
	"startled":   {0, 0.05},
	"moved":      {0.03, -0.02},
	"frustrated": {-0.03, 0.05},
	"despairing": {-0.07, -0.04},
	"amazed":     {0.05, 0.04},
}

// driver deltas, scaled by the caller-supplied driver score.
var driverDeltas = map[string][2]float64{
	"overwhelm": {-0.15, 0.10},
	"gratitude": {0.10, 0},
	"burnout":   {-0.10, -0.10},
	"progress":  {0.08, 0.03},
	"conflict":  {-0.08, 0.08},
}

// driverOrder fixes iteration order for determinism.
var driverOrder = []string{"overwhelm", "gratitude", "burnout", "progress", "conflict"}

// Circadian deltas. Applied only when the caller supplies a local timestamp.
const (
	morningStartHour = 5
	morningEndHour   = 12
	nightStartHour   = 21
)

// Input carries everything the mapper consumes. Valence and Arousal are the
// rule-adjusted starting coordinates (band midpoints before any rules fired).
type Input struct {
	Primary   string
	Secondary string
	Text      string

	Valence float64
	Arousal float64

	DriverScores map[string]float64
	Timestamp    time.Time // zero means no circadian prior

	EventValence float64
	Confidence   float64

	History []model.HistoryPoint
}

// Map produces the final valence/arousal pair. Pure: identical input yields
// identical output; history is read but never mutated.
func Map(in Input) (valence, arousal float64) {
	band := BandFor(in.Primary)
	valence, arousal = in.Valence, in.Arousal

	// Intensity shifts proportionally within the band.
	intensity := Intensity(in.Text)
	valence += intensity * (band.ValenceHi - band.ValenceLo) / 2
	arousal += intensity * (band.ArousalHi - band.ArousalLo) / 2

	if nudge, ok := secondaryNudges[in.Secondary]; ok {
		valence += nudge[0]
		arousal += nudge[1]
	}

	for _, name := range driverOrder {
		score, ok := in.DriverScores[name]
		if !ok {
			continue
		}
		score = clamp.Unit(score)
		delta := driverDeltas[name]
		valence += delta[0] * score
		arousal += delta[1] * score
	}

	if !in.Timestamp.IsZero() {
		switch hour := in.Timestamp.Hour(); {
		case hour >= morningStartHour && hour < morningEndHour:
			valence += 0.10
			arousal += 0.15
		case hour >= nightStartHour || hour < morningStartHour:
			valence -= 0.07
			arousal -= 0.07
		}
	}

	if in.Confidence < lowConfidenceCutoff {
		valence = (1-eventBlend)*valence + eventBlend*in.EventValence
	}

	if len(in.History) > 0 {
		valence, arousal = smooth(valence, arousal, in)
	}

	return clamp.Unit(valence), clamp.Unit(arousal)
}

// Intensity sums intensifier and diminisher hits into a net modifier clamped
// to [-0.3, 0.3].
func Intensity(text string) float64 {
	n := len(intensifiers.FindAllString(text, -1)) - len(diminishers.FindAllString(text, -1))
	return clamp.Range(-intensityMax, intensityMax, float64(n)*intensityStep)
}

// smooth blends the current coordinates against the most recent history point
// with an adaptive exponential weight: the current reading carries more
// weight when confidence is high and when the last entry is stale.
func smooth(valence, arousal float64, in Input) (float64, float64) {
	last := in.History[0]
	for _, h := range in.History[1:] {
		if h.Timestamp.After(last.Timestamp) {
			last = h
		}
	}

	staleness := 1.0
	if !in.Timestamp.IsZero() && !last.Timestamp.IsZero() && in.Timestamp.After(last.Timestamp) {
		hours := in.Timestamp.Sub(last.Timestamp).Hours()
		staleness = math.Min(1, hours/24)
	}

	w := clamp.Range(0.4, 1.0, 0.40+0.35*clamp.Unit(in.Confidence)+0.25*staleness)
	valence = w*valence + (1-w)*clamp.Unit(last.Valence)
	arousal = w*arousal + (1-w)*clamp.Unit(last.Arousal)
	return valence, arousal
}
