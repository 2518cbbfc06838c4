// Package colour implements the colour-matching engine: parsing free-form
// colour text into a canonical RGBA value, converting to OKLCH and measuring
// distance between colours.
package colour

import (
	"fmt"
	"math"
	"strconv"
)

// Color is the canonical colour representation.
// R, G and B are 8-bit channels; A is opacity in [0, 1].
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Opaque returns a fully opaque colour.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex returns the colour as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexAlpha returns the colour as "#rrggbbaa".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, alphaByte(c.A))
}

// String returns "rgb(r, g, b)" for opaque colours and "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// SameRGB reports whether two colours have identical channels, ignoring alpha.
func (c Color) SameRGB(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// RGBToHex formats the RGB channels of c as "#rrggbb".
func RGBToHex(c Color) string {
	return c.Hex()
}

// clampChannel rounds v to the nearest integer and clamps it to [0, 255].
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// clampAlpha restricts an alpha value to [0, 1].
func clampAlpha(a float64) float64 {
	if math.IsNaN(a) {
		return 1
	}
	return math.Max(0, math.Min(1, a))
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clampAlpha(a) * 255))
}
