package infer

import "github.com/fernwell/attune/internal/model"

const (
	agencyBase     = 0.5
	agencyHighLift = 0.30
	agencyLowDrop  = 0.35
	hedgePull      = 0.15

	controlHighThreshold = 0.65
	controlLowThreshold  = 0.35
)

// Control infers the writer's perceived agency. High-agency markers lift the
// score, low-agency markers drop it, and hedging pulls it back toward the
// neutral midpoint: a hedged claim of control is weaker evidence either way.
func Control(fs model.FeatureSet) model.ControlLabel {
	score := agencyBase
	markerClasses := 0

	if fs.AgencyHigh.Present {
		score += agencyHighLift
		markerClasses++
	}
	if fs.AgencyLow.Present {
		score -= agencyLowDrop
		markerClasses++
	}

	if fs.Hedge.Present {
		switch {
		case score > agencyBase:
			score -= hedgePull
			if score < agencyBase {
				score = agencyBase
			}
		case score < agencyBase:
			score += hedgePull
			if score > agencyBase {
				score = agencyBase
			}
		}
	}

	level := model.ControlMedium
	switch {
	case score >= controlHighThreshold:
		level = model.ControlHigh
	case score <= controlLowThreshold:
		level = model.ControlLow
	}

	// Hedging suppresses certainty: a hedged reading never reaches full
	// confidence.
	confidence := 0.5 + 0.2*float64(markerClasses)
	if fs.Hedge.Present {
		confidence -= 0.1
	}
	if confidence < 0.3 {
		confidence = 0.3
	}
	if confidence > 0.9 {
		confidence = 0.9
	}

	return model.ControlLabel{Level: level, Confidence: confidence}
}
