// Package source defines where reflection records come from. Implementations
// live in subpackages and register themselves by kind.
package source

import (
	"context"

	"github.com/fernwell/attune/internal/model"
)

// Source streams reflection records to the pipeline.
type Source interface {
	// Read returns a channel of reflections. The channel closes when the
	// input is exhausted or the context is cancelled. Records that fail to
	// decode are logged and skipped, not surfaced as errors.
	Read(ctx context.Context) (<-chan model.Reflection, error)
}
