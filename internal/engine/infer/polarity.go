package infer

import (
	"strings"

	"github.com/fernwell/attune/internal/model"
)

// Polarity runs the ordered event-polarity checks. A failed attempt still
// means the attempt itself occurred, so it resolves to happened before the
// hypothetical check can see the "tried to" phrasing.
func Polarity(text string, fs model.FeatureSet) model.PolarityLabel {
	switch {
	case fs.FailedAttempt.Present:
		return model.PolarityLabel{Value: model.PolarityHappened, Confidence: 0.8}
	case fs.PastAction.Present:
		return model.PolarityLabel{Value: model.PolarityHappened, Confidence: 0.8}
	case fs.PresentReflection.Present:
		return model.PolarityLabel{Value: model.PolarityHappened, Confidence: 0.6}
	case fs.Hypothetical.Present:
		// A hedged "or if..." chain is genuinely ambiguous, not hypothetical.
		if fs.Hedge.Present && strings.Contains(strings.ToLower(text), "or if") {
			return model.PolarityLabel{Value: model.PolarityNone, Confidence: 0.5}
		}
		return model.PolarityLabel{Value: model.PolarityHypothetical, Confidence: 0.7}
	case fs.NegatedPast.Present:
		return model.PolarityLabel{Value: model.PolarityDidNotHappen, Confidence: 0.75}
	default:
		return model.PolarityLabel{Value: model.PolarityNone, Confidence: 0.3}
	}
}
