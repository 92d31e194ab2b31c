// Package pipeline connects a source, classifier, engine, and output into a
// processing pipeline with duplicate suppression and bounded concurrency.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/fernwell/attune/internal/classifier"
	"github.com/fernwell/attune/internal/engine"
	"github.com/fernwell/attune/internal/model"
	"github.com/fernwell/attune/internal/output"
	"github.com/fernwell/attune/internal/source"
)

// chunkSize is how many records Run gathers from the source before handing
// them to the concurrent batch path.
const chunkSize = 64

// Pipeline moves reflections from a source through the engine to an output.
type Pipeline struct {
	source      source.Source
	provider    classifier.Provider
	engine      *engine.Engine
	output      output.Output
	concurrency int
	seen        *dedup
}

// New creates a Pipeline from the given components. Provider may be nil, in
// which case records arriving without probabilities are enriched against a
// uniform distribution. Concurrency below 1 is treated as 1.
func New(src source.Source, provider classifier.Provider, eng *engine.Engine, out output.Output, concurrency int) *Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		source:      src,
		provider:    provider,
		engine:      eng,
		output:      out,
		concurrency: concurrency,
		seen:        newDedup(),
	}
}

// Run drains the source, enriching records in chunks. Output order matches
// input order. Blocks until the source is exhausted, the context is
// cancelled, or an error occurs.
func (p *Pipeline) Run(ctx context.Context) error {
	ch, err := p.source.Read(ctx)
	if err != nil {
		return fmt.Errorf("pipeline source: %w", err)
	}

	chunk := make([]model.Reflection, 0, chunkSize)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if err := p.Process(ctx, chunk); err != nil {
			return err
		}
		chunk = chunk[:0]
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ref, ok := <-ch:
			if !ok {
				return flush()
			}
			chunk = append(chunk, ref)
			if len(chunk) == chunkSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
}

// Process enriches a batch of reflections and writes the results in input
// order. Duplicates of previously processed records are skipped.
func (p *Pipeline) Process(ctx context.Context, refs []model.Reflection) error {
	fresh := make([]model.Reflection, 0, len(refs))
	for _, ref := range refs {
		if p.seen.check(ref) {
			slog.Debug("skipping duplicate reflection", "id", ref.ID)
			continue
		}
		fresh = append(fresh, ref)
	}
	if len(fresh) == 0 {
		return nil
	}

	results := make([]model.EnrichmentResult, len(fresh))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, ref := range fresh {
		i, ref := i, ref
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			res, err := p.enrichOne(ref)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := p.output.Write(ctx, res); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
	}
	return nil
}

// enrichOne fills missing probabilities from the provider, then enriches. A
// provider failure degrades to the engine's uniform fallback rather than
// dropping the record.
func (p *Pipeline) enrichOne(ref model.Reflection) (model.EnrichmentResult, error) {
	if len(ref.Probabilities) == 0 && p.provider != nil {
		probs, err := p.provider.Probabilities(ref.Text)
		if err != nil {
			slog.Warn("classifier failed, falling back to uniform",
				"id", ref.ID, "error", err)
		} else {
			ref.Probabilities = probs
		}
	}

	res, err := p.engine.Enrich(ref)
	if err != nil {
		return model.EnrichmentResult{}, fmt.Errorf("pipeline enrich %s: %w", ref.ID, err)
	}
	return res, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
