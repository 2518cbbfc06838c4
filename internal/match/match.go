// Package match ranks palette entries by their distance to a query colour.
package match

import (
	"cmp"
	"math"
	"slices"

	"github.com/jmylchreest/shadefinder/internal/colour"
	"github.com/jmylchreest/shadefinder/internal/palette"
)

// DefaultCount is how many matches are returned when no count is given.
const DefaultCount = 5

// Result is a palette entry together with its distance from the query.
type Result struct {
	Entry    palette.Entry `json:"entry"`
	Distance float64       `json:"distance"`
}

// Nearest returns the k entries closest to target under mode, nearest first.
// The result has min(k, len(entries)) elements; k <= 0 or no entries give an
// empty slice. Equal distances keep the order of entries.
func Nearest(entries []palette.Entry, target colour.Color, k int, mode colour.DistanceMode) []Result {
	if k <= 0 || len(entries) == 0 {
		return []Result{}
	}

	results := make([]Result, len(entries))
	switch mode {
	case colour.ModeOKLCH:
		query := colour.ToOKLCH(target)
		for i, e := range entries {
			results[i] = Result{Entry: e, Distance: sanitise(colour.OKLCHDistance(query, colour.ToOKLCH(e.Color)))}
		}
	default:
		for i, e := range entries {
			results[i] = Result{Entry: e, Distance: sanitise(colour.Distance(target, e.Color, mode))}
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return results[:min(k, len(results))]
}

// sanitise maps NaN to +Inf so unconvertible entries sort last.
func sanitise(d float64) float64 {
	if math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}

// Matcher ranks a fixed entry set with a default mode and count.
type Matcher struct {
	entries []palette.Entry
	mode    colour.DistanceMode
	count   int
}

// NewMatcher creates a Matcher over entries using rgb distance and DefaultCount.
func NewMatcher(entries []palette.Entry) *Matcher {
	return &Matcher{
		entries: entries,
		mode:    colour.ModeRGB,
		count:   DefaultCount,
	}
}

// WithMode sets the distance mode.
func (m *Matcher) WithMode(mode colour.DistanceMode) *Matcher {
	m.mode = mode
	return m
}

// WithCount sets how many matches are returned.
func (m *Matcher) WithCount(count int) *Matcher {
	m.count = count
	return m
}

// Mode returns the distance mode in use.
func (m *Matcher) Mode() colour.DistanceMode {
	return m.mode
}

// Match ranks the entries against target.
func (m *Matcher) Match(target colour.Color) []Result {
	return Nearest(m.entries, target, m.count, m.mode)
}

// MatchString parses input and ranks the entries against it.
// The error wraps colour.ErrInvalidColour when input is not a colour.
func (m *Matcher) MatchString(input string) (colour.Color, []Result, error) {
	target, err := colour.Parse(input)
	if err != nil {
		return colour.Color{}, nil, err
	}
	return target, m.Match(target), nil
}
