// Package output defines where enriched results go. Implementations live in
// subpackages.
package output

import (
	"context"

	"github.com/fernwell/attune/internal/model"
)

// Output defines the interface for enrichment result destinations.
type Output interface {
	Write(ctx context.Context, result model.EnrichmentResult) error
	Close() error
}
