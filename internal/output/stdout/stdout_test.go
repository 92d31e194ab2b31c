package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fernwell/attune/internal/model"
)

func TestWriteEncodesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	o := newTo(&buf, true, false)

	res := model.EnrichmentResult{
		ID:      "r1",
		Primary: "sad",
		RuleTrace: []model.RuleTrace{
			{Rule: "fatigue_dampener", Triggered: true},
		},
	}
	if err := o.Write(context.Background(), res); err != nil {
		t.Fatal(err)
	}
	if err := o.Write(context.Background(), res); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var decoded model.EnrichmentResult
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("line not valid JSON: %v", err)
	}
	if decoded.ID != "r1" || len(decoded.RuleTrace) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteQuietDropsTrace(t *testing.T) {
	var buf bytes.Buffer
	o := newTo(&buf, false, false)

	res := model.EnrichmentResult{
		ID:        "r1",
		Primary:   "sad",
		RuleTrace: []model.RuleTrace{{Rule: "fatigue_dampener"}},
	}
	if err := o.Write(context.Background(), res); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "rule_trace") {
		t.Error("trace emitted in quiet mode")
	}
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	if err := newTo(&buf, true, false).Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
