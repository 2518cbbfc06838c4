// Package palette holds the reference palettes that query colours are
// matched against. A palette is defined as families of named shades; the
// matcher works on the flattened list of entries.
package palette

import (
	"fmt"

	"github.com/jmylchreest/shadefinder/internal/colour"
)

// Shade is one named colour within a family, as written in the source.
type Shade struct {
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
}

// Family is an ordered group of shades, e.g. "Red" with shades 50-900.
type Family struct {
	Name   string  `json:"name" yaml:"name"`
	Shades []Shade `json:"shades" yaml:"shades"`
}

// Definition is a palette in source order: family -> shade -> hex.
type Definition struct {
	Name     string   `json:"name" yaml:"name"`
	Families []Family `json:"families" yaml:"families"`
}

// Len returns the number of shades across all families, valid or not.
func (d Definition) Len() int {
	n := 0
	for _, f := range d.Families {
		n += len(f.Shades)
	}
	return n
}

// Family returns the family with the given name.
func (d Definition) Family(name string) (Family, bool) {
	for _, f := range d.Families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

// Entry is a single addressable palette colour.
// (Family, Shade) identifies an entry within its palette.
type Entry struct {
	Family string       `json:"family"`
	Shade  string       `json:"shade"`
	Hex    string       `json:"hex"`
	Color  colour.Color `json:"rgb"`
}

// Key returns the identity of the entry within its palette.
func (e Entry) Key() string {
	return fmt.Sprintf("%s/%s", e.Family, e.Shade)
}

// Label returns the display name, e.g. "Red 500".
func (e Entry) Label() string {
	return e.Family + " " + e.Shade
}

// Flatten lists every shade of def as an Entry, families first, then
// shades, in source order. Shades whose hex does not parse are left out,
// and a repeated (family, shade) pair keeps its first occurrence.
func Flatten(def Definition) []Entry {
	entries := make([]Entry, 0, def.Len())
	seen := make(map[[2]string]bool, def.Len())

	for _, family := range def.Families {
		for _, shade := range family.Shades {
			key := [2]string{family.Name, shade.Name}
			if seen[key] {
				continue
			}

			c, ok := colour.ParseHex(shade.Hex)
			if !ok {
				continue
			}

			seen[key] = true
			entries = append(entries, Entry{
				Family: family.Name,
				Shade:  shade.Name,
				Hex:    shade.Hex,
				Color:  c,
			})
		}
	}

	return entries
}
