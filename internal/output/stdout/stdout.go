// Package stdout writes NDJSON enrichment results to standard output.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fernwell/attune/internal/model"
	"github.com/fernwell/attune/internal/output"
)

// Output writes JSON-encoded enrichment results to stdout, one per line.
type Output struct {
	enc       *json.Encoder
	withTrace bool
}

// New creates a stdout Output. When pretty is set the JSON is indented,
// which is handy for eyeballing a single reflection but breaks NDJSON
// consumers.
func New(withTrace, pretty bool) *Output {
	return newTo(os.Stdout, withTrace, pretty)
}

func newTo(w io.Writer, withTrace, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc, withTrace: withTrace}
}

func (o *Output) Write(_ context.Context, result model.EnrichmentResult) error {
	formatted := output.FormatResult(result, o.withTrace)
	if err := o.enc.Encode(formatted); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
