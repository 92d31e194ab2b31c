package attune

import (
	"fmt"

	"github.com/fernwell/attune/internal/classifier"
	"github.com/fernwell/attune/internal/engine"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/model"
)

// Attune is an affect enrichment engine. It turns free-form reflection text
// into a validated emotion triple, dual valence, context labels, and a
// confidence score. Safe for concurrent use.
type Attune struct {
	engine   *engine.Engine
	provider classifier.Provider
}

// New creates an Attune instance. Without options the engine runs on the
// built-in wheel with no model, which is cheap. WithModelDir/WithModelPaths
// load an ONNX encoder, which is expensive; create once and reuse across
// requests.
func New(opts ...Option) (*Attune, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tax := taxonomy.Default()
	if o.taxonomyPath != "" {
		var err error
		tax, err = taxonomy.Load(o.taxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("attune: %w", err)
		}
	}

	var provider classifier.Provider
	switch {
	case o.classify != nil:
		provider = funcProvider{fn: o.classify}
	case o.useModel:
		modelPath, vocabPath, headPath := resolvePaths(o)
		p, err := classifier.NewONNX(modelPath, vocabPath, headPath)
		if err != nil {
			return nil, fmt.Errorf("attune: %w", err)
		}
		provider = p
	}

	return &Attune{engine: engine.New(tax), provider: provider}, nil
}

// Enrich enriches a single reflection text.
func (a *Attune) Enrich(text string) (Reading, error) {
	return a.EnrichRecord(Record{Text: text})
}

// EnrichRecord enriches a full record. Use this when you have timestamps,
// external model outputs, or history.
func (a *Attune) EnrichRecord(rec Record) (Reading, error) {
	ref := reflectionFromRecord(rec)
	if len(ref.Probabilities) == 0 && a.provider != nil {
		probs, err := a.provider.Probabilities(ref.Text)
		if err != nil {
			return Reading{}, fmt.Errorf("attune: classify: %w", err)
		}
		ref.Probabilities = probs
	}

	res, err := a.engine.Enrich(ref)
	if err != nil {
		return Reading{}, fmt.Errorf("attune: %w", err)
	}
	return readingFromResult(res), nil
}

// EnrichBatch enriches multiple records in order.
func (a *Attune) EnrichBatch(recs []Record) ([]Reading, error) {
	readings := make([]Reading, len(recs))
	for i, rec := range recs {
		r, err := a.EnrichRecord(rec)
		if err != nil {
			return nil, err
		}
		readings[i] = r
	}
	return readings, nil
}

// Close releases model resources. A no-model instance has nothing to release
// but calling Close is still safe.
func (a *Attune) Close() error {
	if a.provider != nil {
		return a.provider.Close()
	}
	return nil
}

// funcProvider adapts a caller-supplied ClassifyFunc to the provider seam.
type funcProvider struct {
	fn ClassifyFunc
}

func (p funcProvider) Probabilities(text string) (map[string]float64, error) {
	return p.fn(text)
}

func (p funcProvider) Close() error { return nil }

// reflectionFromRecord converts without inventing anything: a zero timestamp
// stays zero, which keeps enrichment deterministic and leaves the circadian
// prior off.
func reflectionFromRecord(rec Record) model.Reflection {
	history := make([]model.HistoryPoint, len(rec.History))
	for i, h := range rec.History {
		history[i] = model.HistoryPoint{
			Valence:   h.Valence,
			Arousal:   h.Arousal,
			Timestamp: h.Timestamp,
		}
	}
	return model.Reflection{
		ID:              rec.ID,
		Timestamp:       rec.Timestamp,
		Text:            rec.Text,
		Probabilities:   rec.Probabilities,
		Similarities:    rec.Similarities,
		RerankerPrimary: rec.RerankerPrimary,
		DriverScores:    rec.DriverScores,
		History:         history,
	}
}

// readingFromResult converts the internal result to the public Reading type.
func readingFromResult(res model.EnrichmentResult) Reading {
	trace := make([]RuleStep, len(res.RuleTrace))
	for i, t := range res.RuleTrace {
		trace[i] = RuleStep{
			Rule:        t.Rule,
			Triggered:   t.Triggered,
			Before:      t.Before,
			After:       t.After,
			Explanation: t.Explanation,
		}
	}
	return Reading{
		ID:             res.ID,
		Timestamp:      res.Timestamp,
		Primary:        res.Primary,
		Secondary:      res.Secondary,
		Tertiary:       res.Tertiary,
		Valence:        res.Valence,
		Arousal:        res.Arousal,
		EmotionValence: res.EmotionValence,
		EventValence:   res.EventValence,
		Domain: DomainLabel{
			Primary:      string(res.Domain.Primary),
			Secondary:    string(res.Domain.Secondary),
			MixtureRatio: res.Domain.MixtureRatio,
			Confidence:   res.Domain.Confidence,
		},
		Control: ControlLabel{
			Level:      string(res.Control.Level),
			Confidence: res.Control.Confidence,
		},
		Polarity: PolarityLabel{
			Value:      string(res.Polarity.Value),
			Confidence: res.Polarity.Confidence,
		},
		Confidence:         res.Confidence,
		ConfidenceCategory: string(res.ConfidenceCategory),
		Flags:              res.Flags,
		RuleTrace:          trace,
	}
}
