package palette

import (
	"fmt"
)

// Index holds palette definitions alongside their flattened entries.
// Palettes are flattened once when added and are read-only afterwards.
type Index struct {
	names   []string
	defs    map[string]Definition
	entries map[string][]Entry
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		defs:    make(map[string]Definition),
		entries: make(map[string][]Entry),
	}
}

// NewBuiltinIndex creates an Index holding every built-in palette.
func NewBuiltinIndex() (*Index, error) {
	ix := NewIndex()
	for _, src := range Sources() {
		def, err := Builtin(src)
		if err != nil {
			return nil, err
		}
		ix.Add(def)
	}
	return ix, nil
}

// Add flattens def and registers it under def.Name, replacing any palette
// of the same name.
func (ix *Index) Add(def Definition) {
	if _, exists := ix.defs[def.Name]; !exists {
		ix.names = append(ix.names, def.Name)
	}
	ix.defs[def.Name] = def
	ix.entries[def.Name] = Flatten(def)
}

// Entries returns the flattened entries of the named palette.
func (ix *Index) Entries(name string) ([]Entry, error) {
	entries, ok := ix.entries[name]
	if !ok {
		return nil, fmt.Errorf("palette not found: %s (available: %v)", name, ix.names)
	}
	return entries, nil
}

// Definition returns the source definition of the named palette.
func (ix *Index) Definition(name string) (Definition, bool) {
	def, ok := ix.defs[name]
	return def, ok
}

// Names lists registered palettes in the order they were added.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}
