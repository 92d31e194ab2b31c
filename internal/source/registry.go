package source

import "fmt"

// Constructor creates a Source for the given input path. Sources that do not
// read from a path ignore the argument.
type Constructor func(path string) (Source, error)

var registry = map[string]Constructor{}

// Register adds a source constructor under the given kind name.
func Register(kind string, ctor Constructor) {
	registry[kind] = ctor
}

// Get returns the source constructor for the given kind name.
func Get(kind string) (Constructor, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown source kind: %s", kind)
	}
	return ctor, nil
}

// Kinds returns the names of all registered source kinds.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
