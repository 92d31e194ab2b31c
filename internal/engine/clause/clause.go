// Package clause partitions reflection text into weighted clauses. Weighting
// encodes rhetorical prominence: in "X, but Y" the writer's point is Y, so
// the clause after the contrast marker carries double weight.
package clause

import (
	"regexp"
	"strings"

	"github.com/fernwell/attune/internal/model"
)

const (
	defaultWeight   = 1.0
	feelsLikeFactor = 1.5
	contrastWeight  = 2.0
)

// Hard clause delimiters: sentence punctuation, em-dash, newline.
var hardDelim = regexp.MustCompile(`[.;:\n—]+`)

// Contrast markers split a segment; the marker stays with the clause that
// follows it.
var contrastMarker = regexp.MustCompile(`(?i)\b(but|yet|however|though|although|still|despite)\b`)

var feelsLike = regexp.MustCompile(`(?i)\b(feels? like|felt like|as though)\b`)

// Segment splits text into an ordered clause sequence and assigns weights.
// Empty or whitespace-only text yields a single empty clause of weight 1.0,
// so the sum of weights is always positive.
func Segment(text string) []model.Clause {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []model.Clause{{Text: "", Position: 0, Weight: defaultWeight}}
	}

	var parts []string
	for _, seg := range hardDelim.Split(trimmed, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		parts = append(parts, splitAtContrast(seg)...)
	}
	if len(parts) == 0 {
		return []model.Clause{{Text: "", Position: 0, Weight: defaultWeight}}
	}

	clauses := make([]model.Clause, 0, len(parts))
	contrastSeen := false
	for i, p := range parts {
		startsWithContrast := contrastAtStart(p)
		if startsWithContrast {
			contrastSeen = true
		}

		c := model.Clause{
			Text:              p,
			Position:          i,
			Weight:            defaultWeight,
			HasContrastBefore: contrastSeen,
			HasFeelsLike:      feelsLike.MatchString(p),
		}
		if c.HasFeelsLike {
			c.Weight *= feelsLikeFactor
		}
		// Contrast dominates: once seen, every subsequent clause is weighted
		// 2.0, not multiplied.
		if contrastSeen {
			c.Weight = contrastWeight
		}
		clauses = append(clauses, c)
	}

	// Final override: the clause closing an "X, but Y" construction always
	// wins the tie-break, even if earlier steps were ever reordered.
	last := len(clauses) - 1
	if clauses[last].HasContrastBefore {
		clauses[last].Weight = contrastWeight
	}

	return clauses
}

// TotalWeight sums clause weights. Guaranteed positive for any Segment output.
func TotalWeight(clauses []model.Clause) float64 {
	var total float64
	for _, c := range clauses {
		total += c.Weight
	}
	return total
}

// splitAtContrast splits a segment before each contrast marker, keeping the
// marker with the clause that follows it.
func splitAtContrast(seg string) []string {
	locs := contrastMarker.FindAllStringIndex(seg, -1)
	if len(locs) == 0 {
		return []string{seg}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			p := strings.TrimSpace(seg[prev:loc[0]])
			p = strings.TrimSpace(strings.TrimSuffix(p, ","))
			if p != "" {
				parts = append(parts, p)
			}
		}
		prev = loc[0]
	}
	if p := strings.TrimSpace(seg[prev:]); p != "" {
		parts = append(parts, p)
	}
	return parts
}

func contrastAtStart(p string) bool {
	loc := contrastMarker.FindStringIndex(p)
	return loc != nil && loc[0] == 0
}
