package taxonomy

import (
	"fmt"
	"sort"
)

// Shape constants for the canonical wheel. Any loaded file that deviates is
// rejected; the taxonomy is frozen for the process lifetime and changing it
// is a migration, not a runtime event.
const (
	PrimaryCount   = 6
	SecondaryCount = 6
	TertiaryCount  = 6
	LeafCount      = PrimaryCount * SecondaryCount * TertiaryCount
)

// ErrUnknownPrimary is returned when a primary label cannot be repaired.
var ErrUnknownPrimary = fmt.Errorf("taxonomy: unknown primary")

// Taxonomy is the immutable three-level emotion wheel handle. Built once at
// startup and safe for concurrent reads.
type Taxonomy struct {
	primaries   []string
	secondaries map[string][]string
	tertiaries  map[string]map[string][]string
}

// Wheel is the wire shape of a taxonomy file: primary → secondary → ordered
// tertiary list.
type Wheel map[string]map[string][]string

// New builds a Taxonomy from a wheel mapping, enforcing the exact 6/6/6
// shape. Primary and secondary iteration order is alphabetical for primaries
// and file order is not preserved by the map type, so secondaries are also
// sorted; tertiary lists keep their given order.
func New(w Wheel) (*Taxonomy, error) {
	if len(w) != PrimaryCount {
		return nil, fmt.Errorf("taxonomy: expected %d primaries, got %d", PrimaryCount, len(w))
	}

	t := &Taxonomy{
		secondaries: make(map[string][]string, PrimaryCount),
		tertiaries:  make(map[string]map[string][]string, PrimaryCount),
	}

	for primary := range w {
		t.primaries = append(t.primaries, primary)
	}
	sort.Strings(t.primaries)

	for _, primary := range t.primaries {
		secs := w[primary]
		if len(secs) != SecondaryCount {
			return nil, fmt.Errorf("taxonomy: primary %q has %d secondaries, want %d",
				primary, len(secs), SecondaryCount)
		}

		names := make([]string, 0, SecondaryCount)
		for name := range secs {
			names = append(names, name)
		}
		sort.Strings(names)

		terts := make(map[string][]string, SecondaryCount)
		for _, name := range names {
			leaves := secs[name]
			if len(leaves) != TertiaryCount {
				return nil, fmt.Errorf("taxonomy: %s.%s has %d tertiaries, want %d",
					primary, name, len(leaves), TertiaryCount)
			}
			for _, leaf := range leaves {
				if leaf == "" {
					return nil, fmt.Errorf("taxonomy: %s.%s contains an empty tertiary", primary, name)
				}
			}
			terts[name] = append([]string(nil), leaves...)
		}

		t.secondaries[primary] = names
		t.tertiaries[primary] = terts
	}

	return t, nil
}

// Primaries returns the primaries in canonical (sorted) order.
func (t *Taxonomy) Primaries() []string {
	return t.primaries
}

// HasPrimary reports whether the primary exists in the wheel.
func (t *Taxonomy) HasPrimary(primary string) bool {
	_, ok := t.secondaries[primary]
	return ok
}

// Secondaries returns the ordered secondary list for a primary, or nil if the
// primary is unknown.
func (t *Taxonomy) Secondaries(primary string) []string {
	return t.secondaries[primary]
}

// Tertiaries returns the ordered tertiary list under (primary, secondary), or
// nil if either level is unknown.
func (t *Taxonomy) Tertiaries(primary, secondary string) []string {
	secs, ok := t.tertiaries[primary]
	if !ok {
		return nil
	}
	return secs[secondary]
}

// Validate reports whether the triple is hierarchy-consistent: empty deeper
// fields are allowed, but a tertiary without a secondary, or a label that
// does not exist under its parent, is invalid.
func (t *Taxonomy) Validate(primary, secondary, tertiary string) bool {
	if !t.HasPrimary(primary) {
		return false
	}
	if secondary == "" {
		return tertiary == ""
	}
	if !contains(t.secondaries[primary], secondary) {
		return false
	}
	if tertiary == "" {
		return true
	}
	return contains(t.tertiaries[primary][secondary], tertiary)
}

// Repair drops an invalid triple to its deepest valid prefix, clearing the
// fields below it. An unknown primary cannot be repaired and returns
// ErrUnknownPrimary. Repair never invents a label.
func (t *Taxonomy) Repair(primary, secondary, tertiary string) (string, string, string, error) {
	if !t.HasPrimary(primary) {
		return "", "", "", fmt.Errorf("%w: %q", ErrUnknownPrimary, primary)
	}
	if secondary == "" || !contains(t.secondaries[primary], secondary) {
		return primary, "", "", nil
	}
	if tertiary == "" || !contains(t.tertiaries[primary][secondary], tertiary) {
		return primary, secondary, "", nil
	}
	return primary, secondary, tertiary, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
