package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLCH is a colour in the cylindrical form of OKLab.
// L is lightness (0-1), C is chroma and H is hue in degrees [0, 360).
// H is NaN for achromatic colours, where hue is undefined.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// Achromatic reports whether the hue is undefined.
func (o OKLCH) Achromatic() bool {
	return math.IsNaN(o.H)
}

// String returns the colour in CSS oklch() notation.
func (o OKLCH) String() string {
	if o.Achromatic() {
		return fmt.Sprintf("oklch(%.4f %.4f none)", o.L, o.C)
	}
	return fmt.Sprintf("oklch(%.4f %.4f %.2f)", o.L, o.C, o.H)
}

// ToOKLCH converts an sRGB colour to OKLCH.
// Reference: https://bottosson.github.io/posts/oklab/, with the matrices
// at the precision culori uses.
// Channels are normalised to [0, 1] and linearised before the OKLab
// matrices are applied. Alpha takes no part in the conversion.
func ToOKLCH(c Color) OKLCH {
	l, a, b := toOKLab(c)
	return labToLCH(l, a, b)
}

// toOKLab converts an sRGB colour to OKLab.
// Exact greys get a = b = 0 so that their hue is undefined rather than
// an artefact of rounding in the matrices.
func toOKLab(c Color) (l, a, b float64) {
	lr, lg, lb := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.LinearRgb()

	lms0 := math.Cbrt(0.412221469470763*lr + 0.5363325372617348*lg + 0.0514459932679022*lb)
	lms1 := math.Cbrt(0.2119034958178252*lr + 0.6806995506452344*lg + 0.1073969535369406*lb)
	lms2 := math.Cbrt(0.0883024591900564*lr + 0.2817188391361215*lg + 0.6299787016738222*lb)

	l = 0.210454268309314*lms0 + 0.7936177747023054*lms1 - 0.0040720430116193*lms2
	a = 1.9779985324311684*lms0 - 2.42859224204858*lms1 + 0.450593709617411*lms2
	b = 0.0259040424655478*lms0 + 0.7827717124575296*lms1 - 0.8086757549230774*lms2

	if c.R == c.G && c.G == c.B {
		a, b = 0, 0
	}
	return l, a, b
}

// labToLCH converts OKLab to OKLCH. Hue is left undefined when chroma is zero.
func labToLCH(l, a, b float64) OKLCH {
	chroma := math.Sqrt(a*a + b*b)
	hue := math.NaN()
	if chroma != 0 {
		hue = normaliseHue(math.Atan2(b, a) * 180 / math.Pi)
	}
	return OKLCH{L: l, C: chroma, H: hue}
}

// normaliseHue wraps an angle in degrees into [0, 360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// OKLCHDistance is the Euclidean distance between two OKLCH colours.
// The hue term is the chord ΔH = 2·sqrt(C1·C2)·sin(Δh/2), and drops out
// when either colour is achromatic. With equal hues the chord leaves a
// residue of about 1e-16, so identical colours give ~0 rather than exactly 0.
func OKLCHDistance(x, y OKLCH) float64 {
	dl := x.L - y.L
	dc := x.C - y.C
	dh := hueChordDifference(x, y)
	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}

func hueChordDifference(x, y OKLCH) float64 {
	if x.Achromatic() || y.Achromatic() || x.C == 0 || y.C == 0 {
		return 0
	}
	delta := normaliseHue(y.H) - normaliseHue(x.H)
	return 2 * math.Sqrt(x.C*y.C) * math.Sin((delta+360)/2*math.Pi/180)
}
