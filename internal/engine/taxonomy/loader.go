package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a wheel file and builds a Taxonomy from it. The file maps
// primary → secondary → ordered tertiary list; YAML and JSON are both
// accepted (JSON is a YAML subset). The shape contract, exactly six
// primaries with six secondaries each and six tertiaries under every pair, is
// enforced before the handle is returned; a malformed file is a hard error,
// never a partial load.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}

	var w Wheel
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("taxonomy: parse %s: %w", path, err)
	}

	t, err := New(w)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %s: %w", path, err)
	}
	return t, nil
}
