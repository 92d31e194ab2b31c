// Package file reads NDJSON reflections from a file on disk.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/fernwell/attune/internal/model"
	"github.com/fernwell/attune/internal/source"
)

func init() {
	source.Register("file", func(path string) (source.Source, error) {
		s, err := New(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Source streams reflections from a single NDJSON file.
type Source struct {
	path string
}

// New creates a file Source for the given path. The path is validated at
// construction so a bad config fails at startup, not mid-stream.
func New(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("file source: no input path configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}
	return &Source{path: path}, nil
}

func (s *Source) Read(ctx context.Context) (<-chan model.Reflection, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("file source: open %s: %w", s.path, err)
	}

	inner := source.StreamNDJSON(ctx, f, s.path)
	ch := make(chan model.Reflection)
	go func() {
		defer close(ch)
		defer f.Close()
		for ref := range inner {
			select {
			case ch <- ref:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
