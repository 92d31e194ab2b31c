package source

import (
	"context"
	"strings"
	"testing"
	"time"
)

func collect(t *testing.T, input string) []string {
	t.Helper()
	ch := StreamNDJSON(context.Background(), strings.NewReader(input), "test")
	var ids []string
	for ref := range ch {
		ids = append(ids, ref.ID)
	}
	return ids
}

func TestStreamNDJSON(t *testing.T) {
	input := `{"id":"a","text":"first entry"}
{"id":"b","text":"second entry"}
{"id":"c","text":"third entry"}
`
	ids := collect(t, input)
	if len(ids) != 3 {
		t.Fatalf("got %d records, want 3", len(ids))
	}
	for i, want := range []string{"a", "b", "c"} {
		if ids[i] != want {
			t.Errorf("record %d has ID %q, want %q", i, ids[i], want)
		}
	}
}

func TestStreamNDJSONSkipsBlankAndMalformedLines(t *testing.T) {
	input := `{"id":"a","text":"good"}

not json at all
{"id":"b","text":"also good"}
{broken
`
	ids := collect(t, input)
	if len(ids) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(ids), ids)
	}
	if ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ids = %v, want [a b]", ids)
	}
}

func TestStreamNDJSONKeepsZeroTimestamp(t *testing.T) {
	ch := StreamNDJSON(context.Background(), strings.NewReader(`{"id":"a","text":"x"}`+"\n"), "test")
	ref := <-ch
	for range ch {
	}
	// A missing timestamp must stay zero: stamping read time would make
	// identical lines enrich and hash differently.
	if !ref.Timestamp.IsZero() {
		t.Errorf("Timestamp = %v, want zero for a record without one", ref.Timestamp)
	}
}

func TestStreamNDJSONKeepsGivenTimestamp(t *testing.T) {
	ch := StreamNDJSON(context.Background(),
		strings.NewReader(`{"id":"a","text":"x","timestamp":"2025-06-01T09:00:00Z"}`+"\n"), "test")
	ref := <-ch
	for range ch {
	}
	want := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if !ref.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", ref.Timestamp, want)
	}
}

func TestStreamNDJSONDecodesModelFields(t *testing.T) {
	input := `{"id":"a","text":"x","probabilities":{"happy":0.5,"sad":0.5},"reranker_primary":"sad"}` + "\n"
	ch := StreamNDJSON(context.Background(), strings.NewReader(input), "test")
	ref := <-ch
	for range ch {
	}
	if ref.Probabilities["sad"] != 0.5 {
		t.Errorf("Probabilities = %v", ref.Probabilities)
	}
	if ref.RerankerPrimary != "sad" {
		t.Errorf("RerankerPrimary = %q, want sad", ref.RerankerPrimary)
	}
}

func TestStreamNDJSONHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := StreamNDJSON(ctx, strings.NewReader(`{"id":"a","text":"x"}`+"\n"), "test")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // channel closed, goroutine exited
			}
		case <-deadline:
			t.Fatal("channel did not close after cancellation")
		}
	}
}

func TestRegistry(t *testing.T) {
	Register("testkind", func(string) (Source, error) { return nil, nil })

	if _, err := Get("testkind"); err != nil {
		t.Errorf("Get(testkind) error: %v", err)
	}
	if _, err := Get("no-such-kind"); err == nil {
		t.Error("Get accepted an unregistered kind")
	}

	found := false
	for _, k := range Kinds() {
		if k == "testkind" {
			found = true
		}
	}
	if !found {
		t.Errorf("Kinds() = %v, missing testkind", Kinds())
	}
}
