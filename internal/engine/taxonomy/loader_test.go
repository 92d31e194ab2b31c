package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadValidWheel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte(wheelYAML()), 0644); err != nil {
		t.Fatal(err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := len(tax.Primaries()); got != PrimaryCount {
		t.Errorf("loaded %d primaries, want %d", got, PrimaryCount)
	}
	if !tax.Validate("happy", "h0", "h0t0") {
		t.Error("loaded wheel missing expected path happy.h0.h0t0")
	}
}

func TestLoadRejectsMalformedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	content := "happy:\n  only:\n    - a\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted a wheel with the wrong shape")
	}
}

func TestLoadRejectsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted an unparseable file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() accepted a missing file")
	}
}

// wheelYAML renders a synthetic but shape-correct 6/6/6 wheel.
func wheelYAML() string {
	var b strings.Builder
	for _, p := range CanonicalPrimaries {
		fmt.Fprintf(&b, "%s:\n", p)
		for s := 0; s < SecondaryCount; s++ {
			fmt.Fprintf(&b, "  %s%d:\n", p[:1], s)
			for tt := 0; tt < TertiaryCount; tt++ {
				fmt.Fprintf(&b, "    - %s%dt%d\n", p[:1], s, tt)
			}
		}
	}
	return b.String()
}
