package clause

import (
	"math"
	"testing"
)

func TestSegmentEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "...", ".;:"} {
		clauses := Segment(text)
		if len(clauses) != 1 {
			t.Fatalf("Segment(%q) = %d clauses, want 1", text, len(clauses))
		}
		if clauses[0].Weight != 1.0 {
			t.Errorf("Segment(%q) weight = %v, want 1.0", text, clauses[0].Weight)
		}
		if TotalWeight(clauses) <= 0 {
			t.Errorf("Segment(%q): total weight not positive", text)
		}
	}
}

func TestSegmentSingleClause(t *testing.T) {
	clauses := Segment("I finished the report")
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	c := clauses[0]
	if c.Weight != 1.0 || c.HasContrastBefore || c.HasFeelsLike {
		t.Errorf("unexpected clause %+v", c)
	}
}

func TestSegmentContrast(t *testing.T) {
	clauses := Segment("Got promoted today, but I feel so empty inside")
	if len(clauses) != 2 {
		t.Fatalf("got %d clauses, want 2: %+v", len(clauses), clauses)
	}

	first, second := clauses[0], clauses[1]
	if first.Weight != 1.0 {
		t.Errorf("pre-contrast weight = %v, want 1.0", first.Weight)
	}
	if first.HasContrastBefore {
		t.Error("pre-contrast clause marked HasContrastBefore")
	}
	if second.Weight != 2.0 {
		t.Errorf("post-contrast weight = %v, want 2.0", second.Weight)
	}
	if !second.HasContrastBefore {
		t.Error("post-contrast clause not marked HasContrastBefore")
	}
	if second.Weight <= first.Weight {
		t.Error("post-contrast clause does not outweigh the pre-contrast clause")
	}
}

func TestSegmentContrastPropagates(t *testing.T) {
	// Everything after the first contrast marker stays at contrast weight.
	clauses := Segment("The day went fine, but the meeting ran long, and I said nothing")
	if len(clauses) < 2 {
		t.Fatalf("got %d clauses, want at least 2", len(clauses))
	}
	for _, c := range clauses[1:] {
		if !c.HasContrastBefore {
			t.Errorf("clause %d not marked HasContrastBefore", c.Position)
		}
		if c.Weight != 2.0 {
			t.Errorf("clause %d weight = %v, want 2.0", c.Position, c.Weight)
		}
	}
}

func TestSegmentFeelsLike(t *testing.T) {
	clauses := Segment("It feels like nothing matters")
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	c := clauses[0]
	if !c.HasFeelsLike {
		t.Fatal("HasFeelsLike not set")
	}
	if math.Abs(c.Weight-1.5) > 1e-9 {
		t.Errorf("feels-like weight = %v, want 1.5", c.Weight)
	}
}

func TestSegmentContrastDominatesFeelsLike(t *testing.T) {
	clauses := Segment("The launch went well, but it feels like a hollow win")
	last := clauses[len(clauses)-1]
	if !last.HasFeelsLike || !last.HasContrastBefore {
		t.Fatalf("unexpected final clause %+v", last)
	}
	if last.Weight != 2.0 {
		t.Errorf("final weight = %v, want 2.0 (contrast overrides feels-like)", last.Weight)
	}
}

func TestSegmentPositions(t *testing.T) {
	clauses := Segment("First part. Second part. Third part")
	if len(clauses) != 3 {
		t.Fatalf("got %d clauses, want 3", len(clauses))
	}
	for i, c := range clauses {
		if c.Position != i {
			t.Errorf("clause %d has Position %d", i, c.Position)
		}
	}
}

func TestTotalWeightAlwaysPositive(t *testing.T) {
	texts := []string{"", "but", "a. b. c", "x, but y", "feels like rain"}
	for _, text := range texts {
		if w := TotalWeight(Segment(text)); w <= 0 {
			t.Errorf("TotalWeight(Segment(%q)) = %v, want > 0", text, w)
		}
	}
}
