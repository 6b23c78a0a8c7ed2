package parse

import (
	"fmt"
	"sort"
)

// Stream is the minimal pull contract every format adapter satisfies.
// Concrete adapters expose a typed Result accessor alongside it.
type Stream interface {
	// Next advances to the next record. It returns false when the input is
	// exhausted or the stream stopped on a fatal error.
	Next() bool

	// Err returns the error that stopped the stream, or nil after a clean
	// end of input.
	Err() error
}

// Factory constructs a format adapter's stream over a line source.
type Factory func(src LineSource, opts Options) Stream

var registry = map[string]Factory{}

// Register adds a format adapter under the given name. Adapters register
// themselves from their package init.
func Register(name string, f Factory) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("parse: duplicate format registration: %s", name))
	}
	registry[name] = f
}

// Lookup returns the factory for a registered format name.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return f, nil
}

// Formats returns the sorted names of all registered format adapters.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
