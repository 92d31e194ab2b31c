// Package multi fans readings out to several sinks at once, so a run can
// both print results and keep an NDJSON archive.
package multi

import (
	"context"
	"errors"

	"github.com/fernwell/attune/internal/model"
	"github.com/fernwell/attune/internal/output"
)

// Multi delivers every reading to each wrapped sink sequentially. A failing
// sink does not stop delivery to the rest.
type Multi struct {
	sinks []output.Output
}

// New creates a Multi over the given sinks.
func New(sinks ...output.Output) *Multi {
	return &Multi{sinks: sinks}
}

// Write delivers the reading to every sink, collecting errors.
func (m *Multi) Write(ctx context.Context, r model.EnrichmentResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Write(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
