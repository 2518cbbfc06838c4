package colour

import (
	"fmt"
	"math"
	"strings"
)

// DistanceMode selects the metric used to compare two colours.
type DistanceMode string

const (
	// ModeRGB is Euclidean distance over the 0-255 RGB channels.
	ModeRGB DistanceMode = "rgb"

	// ModeOKLCH is Euclidean distance in the perceptually uniform OKLCH space.
	ModeOKLCH DistanceMode = "oklch"
)

// DistanceModes returns every supported mode.
func DistanceModes() []DistanceMode {
	return []DistanceMode{ModeRGB, ModeOKLCH}
}

// ParseDistanceMode maps a name (case-insensitive) to a DistanceMode.
func ParseDistanceMode(s string) (DistanceMode, error) {
	switch DistanceMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRGB:
		return ModeRGB, nil
	case ModeOKLCH:
		return ModeOKLCH, nil
	default:
		return "", fmt.Errorf("unknown distance mode: %s (valid modes: %v)", s, DistanceModes())
	}
}

// String implements pflag.Value.
func (m DistanceMode) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *DistanceMode) Set(s string) error {
	parsed, err := ParseDistanceMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *DistanceMode) Type() string {
	return "mode"
}

// FormatDistance renders a distance the way it is shown to users: whole
// numbers for RGB, three decimals for OKLCH.
func (m DistanceMode) FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	if m == ModeOKLCH {
		return fmt.Sprintf("%.3f", d)
	}
	return fmt.Sprintf("%.0f", math.Round(d))
}

// RGBDistance is the Euclidean distance between the RGB channels of two
// colours. Alpha is ignored.
func RGBDistance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Distance measures a and b under mode. Alpha never takes part.
// Unknown modes yield +Inf.
func Distance(a, b Color, mode DistanceMode) float64 {
	switch mode {
	case ModeRGB:
		return RGBDistance(a, b)
	case ModeOKLCH:
		return OKLCHDistance(ToOKLCH(a), ToOKLCH(b))
	default:
		return math.Inf(1)
	}
}
