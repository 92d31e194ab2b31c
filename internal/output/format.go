package output

import "github.com/fernwell/attune/internal/model"

// FormatResult returns a copy of the result with heavyweight diagnostic
// fields stripped unless trace output is enabled. The rule trace roughly
// triples the encoded size of a record, so quiet mode drops it (omitted from
// JSON via omitempty).
func FormatResult(r model.EnrichmentResult, withTrace bool) model.EnrichmentResult {
	if !withTrace {
		r.RuleTrace = nil
	}
	return r
}
