// Package stdin reads NDJSON reflections from standard input.
package stdin

import (
	"context"
	"os"

	"github.com/fernwell/attune/internal/model"
	"github.com/fernwell/attune/internal/source"
)

func init() {
	source.Register("stdin", func(string) (source.Source, error) {
		return &Source{}, nil
	})
}

// Source streams reflections from os.Stdin until EOF.
type Source struct{}

// New creates a stdin Source.
func New() *Source {
	return &Source{}
}

func (s *Source) Read(ctx context.Context) (<-chan model.Reflection, error) {
	return source.StreamNDJSON(ctx, os.Stdin, "stdin"), nil
}
