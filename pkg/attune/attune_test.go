package attune

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newEngine(t *testing.T) *Attune {
	t.Helper()
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestEnrich(t *testing.T) {
	a := newEngine(t)

	reading, err := a.Enrich("Got promoted today, but I feel so empty inside")
	if err != nil {
		t.Fatal(err)
	}
	if reading.Primary != "sad" || reading.Secondary != "depressed" {
		t.Errorf("triple = %s/%s, want sad/depressed",
			reading.Primary, reading.Secondary)
	}
	if reading.Tertiary == "" {
		t.Error("tertiary is empty")
	}
	if reading.Domain.Primary != "work" {
		t.Errorf("domain = %q, want work", reading.Domain.Primary)
	}
	if reading.EventValence <= reading.EmotionValence {
		t.Errorf("event valence %v should exceed emotion valence %v",
			reading.EventValence, reading.EmotionValence)
	}
	if len(reading.RuleTrace) != 5 {
		t.Errorf("trace has %d steps, want 5", len(reading.RuleTrace))
	}
}

func TestEnrichDeterministicWithoutTimestamp(t *testing.T) {
	a := newEngine(t)

	rec := Record{Text: "Got promoted today, but I feel so empty inside"}
	first, err := a.EnrichRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.EnrichRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	// Identical input through the public API must yield identical readings,
	// wall clock included: nothing may stamp a missing timestamp.
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated enrichment differs (-first +second):\n%s", diff)
	}
	if !first.Timestamp.IsZero() {
		t.Errorf("Timestamp = %v, want zero when the record carries none", first.Timestamp)
	}
}

func TestEnrichRecordWithProbabilities(t *testing.T) {
	a := newEngine(t)

	reading, err := a.EnrichRecord(Record{
		ID:        "r-1",
		Timestamp: time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Text:      "The meeting ran long",
		Probabilities: map[string]float64{
			"happy": 0.05, "sad": 0.05, "angry": 0.70,
			"fearful": 0.10, "surprised": 0.05, "disgusted": 0.05,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if reading.ID != "r-1" {
		t.Errorf("ID = %q, want r-1", reading.ID)
	}
	if reading.Primary != "angry" {
		t.Errorf("primary = %q, want angry from the supplied distribution", reading.Primary)
	}
	for _, f := range reading.Flags {
		if f == "no_probabilities" {
			t.Error("no_probabilities flagged despite supplied distribution")
		}
	}
}

func TestEnrichRecordRejectsBadDistribution(t *testing.T) {
	a := newEngine(t)

	_, err := a.EnrichRecord(Record{
		Text:          "fine day",
		Probabilities: map[string]float64{"joyful": 1.0},
	})
	if err == nil {
		t.Fatal("accepted an unknown emotion key")
	}
	if !strings.Contains(err.Error(), "joyful") {
		t.Errorf("error %q does not name the bad key", err)
	}
}

func TestEnrichBatch(t *testing.T) {
	a := newEngine(t)

	recs := []Record{
		{ID: "a", Text: "I passed the exam and I am so proud"},
		{ID: "b", Text: "The deal fell through and I am furious"},
		{ID: "c", Text: "Just a quiet day"},
	}
	readings, err := a.EnrichBatch(recs)
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) != len(recs) {
		t.Fatalf("got %d readings, want %d", len(readings), len(recs))
	}
	for i, r := range readings {
		if r.ID != recs[i].ID {
			t.Errorf("readings[%d].ID = %q, want %q", i, r.ID, recs[i].ID)
		}
	}
}

func TestEnrichBatchSurfacesError(t *testing.T) {
	a := newEngine(t)

	_, err := a.EnrichBatch([]Record{
		{Text: "fine"},
		{Text: "bad", Probabilities: map[string]float64{"joyful": 1.0}},
	})
	if err == nil {
		t.Fatal("batch swallowed a record error")
	}
}

func TestWithClassifier(t *testing.T) {
	calls := 0
	a, err := New(WithClassifier(func(text string) (map[string]float64, error) {
		calls++
		return map[string]float64{
			"happy": 0.05, "sad": 0.05, "angry": 0.70,
			"fearful": 0.10, "surprised": 0.05, "disgusted": 0.05,
		}, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	reading, err := a.Enrich("The meeting ran long")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("classifier called %d times, want 1", calls)
	}
	if reading.Primary != "angry" {
		t.Errorf("primary = %q, want angry", reading.Primary)
	}

	// Records that carry their own distribution skip the classifier.
	if _, err := a.EnrichRecord(Record{
		Text: "fine",
		Probabilities: map[string]float64{
			"happy": 0.5, "sad": 0.1, "angry": 0.1,
			"fearful": 0.1, "surprised": 0.1, "disgusted": 0.1,
		},
	}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("classifier called %d times after pre-scored record, want 1", calls)
	}
}

func TestWithClassifierError(t *testing.T) {
	a, err := New(WithClassifier(func(string) (map[string]float64, error) {
		return nil, errors.New("model offline")
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if _, err := a.Enrich("anything"); err == nil {
		t.Fatal("classifier error not surfaced")
	}
}

func TestNewRejectsMissingTaxonomy(t *testing.T) {
	if _, err := New(WithTaxonomy("no/such/wheel.yaml")); err == nil {
		t.Fatal("accepted a missing taxonomy file")
	}
}

func TestCloseWithoutModel(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
