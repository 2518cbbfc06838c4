package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// resolveNamed resolves anything that is neither hex nor rgb() syntax:
// CSS colour keywords and functional notations such as hsl(), hwb(),
// lab() or oklch(). The result is rendered to a computed rgb() string and
// decoded again, so every path yields channels rounded the same way.
func resolveNamed(input string) (Color, bool) {
	computed, ok := computedStyle(input)
	if !ok {
		return Color{}, false
	}

	c, ok := ParseComputedRGB(computed)
	if !ok {
		return Color{}, false
	}

	// Fully transparent black is what an unresolvable value computes to.
	if c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0 {
		return Color{}, false
	}
	return c, true
}

// computedStyle renders input as a computed colour string of the form
// "rgb(r g b / a)" with fractional channels.
func computedStyle(input string) (string, bool) {
	s := strings.TrimSpace(input)

	// Hex digits only count as a colour after a '#'.
	if _, ok := ParseHex(s); ok {
		return "", false
	}

	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("rgb(%s %s %s / %s)",
		channel255(c.R), channel255(c.G), channel255(c.B), formatFloat(clampAlpha(c.A))), true
}

// channel255 scales a [0, 1] channel to [0, 255]. Out of gamut values are
// clipped, not mapped.
func channel255(v float64) string {
	return formatFloat(math.Max(0, math.Min(255, v*255)))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
