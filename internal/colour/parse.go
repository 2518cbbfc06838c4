package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColour is returned (wrapped) when text cannot be read as a colour.
var ErrInvalidColour = errors.New("invalid colour")

// number matches an unsigned decimal such as 1, 1.5, 1. or .5.
const number = `(?:\d+(?:\.\d*)?|\.\d+)`

var (
	rgbPrefixRegex = regexp.MustCompile(`(?i)^rgba?\s*\(`)

	// rgb(r,g,b) or rgba(r,g,b,a) with integer channels.
	rgbaRegex = regexp.MustCompile(
		`(?i)^rgba?\s*\(\s*([+-]?\d+)\s*,\s*([+-]?\d+)\s*,\s*([+-]?\d+)\s*(?:,\s*([+-]?` + number + `)\s*)?\)\s*$`)

	computedCommaRegex = regexp.MustCompile(
		`(?i)^rgba?\s*\(\s*(` + number + `)\s*,\s*(` + number + `)\s*,\s*(` + number + `)\s*(?:[,/]\s*(` + number + `)\s*)?\)\s*$`)

	computedSpaceRegex = regexp.MustCompile(
		`(?i)^rgba?\s*\(\s*(` + number + `)\s+(` + number + `)\s+(` + number + `)\s*(?:/\s*(` + number + `)\s*)?\)\s*$`)
)

// ParseColor reads a hex, rgb()/rgba() or CSS colour name.
// It reports false when the input is not a colour.
func ParseColor(input string) (Color, bool) {
	c, err := Parse(input)
	return c, err == nil
}

// Parse is ParseColor with a descriptive error wrapping ErrInvalidColour.
//
// Dispatch is by the shape of the trimmed input: a leading '#' is always
// read as hex, an rgb(/rgba( prefix is always read with the strict integer
// syntax, and anything else goes to the CSS colour resolver.
func Parse(input string) (Color, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Color{}, fmt.Errorf("%w: empty input", ErrInvalidColour)
	}

	if strings.HasPrefix(trimmed, "#") {
		c, ok := ParseHex(trimmed)
		if !ok {
			return Color{}, fmt.Errorf("%w: %q is not #rgb, #rrggbb or #rrggbbaa", ErrInvalidColour, trimmed)
		}
		return c, nil
	}

	if rgbPrefixRegex.MatchString(trimmed) {
		c, ok := ParseRGBA(trimmed)
		if !ok {
			return Color{}, fmt.Errorf("%w: %q is not rgb(r, g, b) or rgba(r, g, b, a)", ErrInvalidColour, trimmed)
		}
		return c, nil
	}

	c, ok := resolveNamed(trimmed)
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown colour %q", ErrInvalidColour, trimmed)
	}
	return c, nil
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa. The leading '#' is optional.
// The 3-digit form repeats each nibble; the 8-digit form carries alpha.
func ParseHex(hex string) (Color, bool) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(hex, "#"))

	for i := 0; i < len(cleaned); i++ {
		if !isHexDigit(cleaned[i]) {
			return Color{}, false
		}
	}

	switch len(cleaned) {
	case 3:
		return Color{
			R: hexNibble(cleaned[0]) * 0x11,
			G: hexNibble(cleaned[1]) * 0x11,
			B: hexNibble(cleaned[2]) * 0x11,
			A: 1,
		}, true
	case 6:
		return Color{
			R: hexByte(cleaned[0:2]),
			G: hexByte(cleaned[2:4]),
			B: hexByte(cleaned[4:6]),
			A: 1,
		}, true
	case 8:
		return Color{
			R: hexByte(cleaned[0:2]),
			G: hexByte(cleaned[2:4]),
			B: hexByte(cleaned[4:6]),
			A: float64(hexByte(cleaned[6:8])) / 255.0,
		}, true
	default:
		return Color{}, false
	}
}

// ParseRGBA parses rgb(r, g, b) and rgba(r, g, b, a).
// Channels are integers clamped to [0, 255]; alpha defaults to 1 and is
// clamped to [0, 1].
func ParseRGBA(s string) (Color, bool) {
	m := rgbaRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Color{}, false
	}

	return fromSubmatch(m)
}

// ParseComputedRGB decodes the canonical strings produced by colour-name
// resolution: comma separated rgb(r, g, b[, a]) / rgba(...) or space
// separated rgb(r g b[ / a]). Fractional channels are rounded to the
// nearest integer and clamped.
func ParseComputedRGB(s string) (Color, bool) {
	s = strings.TrimSpace(s)

	m := computedCommaRegex.FindStringSubmatch(s)
	if m == nil {
		m = computedSpaceRegex.FindStringSubmatch(s)
	}
	if m == nil {
		return Color{}, false
	}

	return fromSubmatch(m)
}

// fromSubmatch builds a colour from three channel captures and an optional
// alpha capture at m[1:5].
func fromSubmatch(m []string) (Color, bool) {
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Color{}, false
		}
		ch[i] = v
	}

	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return Color{}, false
		}
		alpha = clampAlpha(a)
	}

	return Color{
		R: clampChannel(ch[0]),
		G: clampChannel(ch[1]),
		B: clampChannel(ch[2]),
		A: alpha,
	}, true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexNibble converts a single hex digit. The caller has already validated it.
func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func hexByte(s string) uint8 {
	return hexNibble(s[0])<<4 | hexNibble(s[1])
}
