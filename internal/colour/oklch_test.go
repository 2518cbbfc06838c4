package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestToOKLCH(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want OKLCH
	}{
		{name: "red", c: Opaque(255, 0, 0), want: OKLCH{L: 0.627955, C: 0.257683, H: 29.2339}},
		{name: "green", c: Opaque(0, 255, 0), want: OKLCH{L: 0.866440, C: 0.294827, H: 142.4953}},
		{name: "blue", c: Opaque(0, 0, 255), want: OKLCH{L: 0.452014, C: 0.313214, H: 264.0521}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToOKLCH(tt.c)
			if math.Abs(got.L-tt.want.L) > 1e-4 {
				t.Errorf("L = %v, want %v", got.L, tt.want.L)
			}
			if math.Abs(got.C-tt.want.C) > 1e-4 {
				t.Errorf("C = %v, want %v", got.C, tt.want.C)
			}
			if math.Abs(got.H-tt.want.H) > 1e-2 {
				t.Errorf("H = %v, want %v", got.H, tt.want.H)
			}
		})
	}
}

func TestToOKLCHAchromatic(t *testing.T) {
	for _, v := range []uint8{0, 1, 64, 128, 200, 255} {
		got := ToOKLCH(Opaque(v, v, v))
		if !got.Achromatic() {
			t.Errorf("grey %d: hue = %v, want undefined", v, got.H)
		}
		if got.C != 0 {
			t.Errorf("grey %d: chroma = %v, want 0", v, got.C)
		}
	}

	white := ToOKLCH(Opaque(255, 255, 255))
	if math.Abs(white.L-1) > 1e-4 {
		t.Errorf("white L = %v, want 1", white.L)
	}
	black := ToOKLCH(Opaque(0, 0, 0))
	if black.L != 0 {
		t.Errorf("black L = %v, want 0", black.L)
	}
}

func TestToOKLCHMatchesColorful(t *testing.T) {
	// Lightness and chroma agree with go-colorful's OkLch. Hue conventions
	// differ for greys, so only chromatic colours compare hue.
	colours := []Color{
		Opaque(255, 0, 0),
		Opaque(18, 52, 86),
		Opaque(239, 68, 68),
		Opaque(128, 128, 0),
		Opaque(250, 250, 249),
	}

	for _, c := range colours {
		ours := ToOKLCH(c)
		l, ch, h := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.OkLch()

		if math.Abs(ours.L-l) > 1e-3 {
			t.Errorf("%s: L = %v, colorful %v", c.Hex(), ours.L, l)
		}
		if math.Abs(ours.C-ch) > 1e-3 {
			t.Errorf("%s: C = %v, colorful %v", c.Hex(), ours.C, ch)
		}
		if ours.C > 0.02 && math.Abs(ours.H-h) > 0.5 {
			t.Errorf("%s: H = %v, colorful %v", c.Hex(), ours.H, h)
		}
	}
}

func TestOKLCHString(t *testing.T) {
	if got := ToOKLCH(Opaque(128, 128, 128)).String(); got[len(got)-5:] != "none)" {
		t.Errorf("grey String() = %q, want hue none", got)
	}
	if got := (OKLCH{L: 0.5, C: 0.1, H: 120}).String(); got != "oklch(0.5000 0.1000 120.00)" {
		t.Errorf("String() = %q", got)
	}
}

func TestOKLCHDistance(t *testing.T) {
	red := ToOKLCH(Opaque(255, 0, 0))
	blue := ToOKLCH(Opaque(0, 0, 255))
	grey := ToOKLCH(Opaque(128, 128, 128))

	if d := OKLCHDistance(red, red); d > 1e-12 {
		t.Errorf("distance to self = %v, want ~0", d)
	}
	if d := OKLCHDistance(grey, grey); d != 0 {
		t.Errorf("grey distance to self = %v, want 0", d)
	}
	if a, b := OKLCHDistance(red, blue), OKLCHDistance(blue, red); math.Abs(a-b) > 1e-12 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}

	// With an achromatic side the hue term drops out.
	dl := red.L - grey.L
	dc := red.C - grey.C
	if got, want := OKLCHDistance(red, grey), math.Sqrt(dl*dl+dc*dc); math.Abs(got-want) > 1e-12 {
		t.Errorf("distance to grey = %v, want %v", got, want)
	}

	// Hue chord: equal L and C, opposite hues, gives 2C.
	x := OKLCH{L: 0.5, C: 0.1, H: 10}
	y := OKLCH{L: 0.5, C: 0.1, H: 190}
	if got := OKLCHDistance(x, y); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("opposite hue distance = %v, want 0.2", got)
	}

	// Hue wraps around 360.
	p := OKLCH{L: 0.5, C: 0.1, H: 350}
	q := OKLCH{L: 0.5, C: 0.1, H: 10}
	r := OKLCH{L: 0.5, C: 0.1, H: 30}
	if a, b := OKLCHDistance(p, q), OKLCHDistance(q, r); math.Abs(a-b) > 1e-12 {
		t.Errorf("wrapped hue distance %v, want %v", a, b)
	}
}

func TestOKLCHStringParses(t *testing.T) {
	// The oklch() notation printed by the parse command reads back to the
	// same colour, give or take a unit of rounding.
	for _, c := range []Color{Opaque(255, 0, 0), Opaque(18, 52, 86), Opaque(200, 180, 20), Opaque(30, 90, 40)} {
		got, ok := ParseColor(ToOKLCH(c).String())
		if !ok {
			t.Fatalf("ParseColor(%q) failed", ToOKLCH(c).String())
		}
		for _, d := range []int{int(got.R) - int(c.R), int(got.G) - int(c.G), int(got.B) - int(c.B)} {
			if d < -1 || d > 1 {
				t.Errorf("%s read back as %s", c.Hex(), got.Hex())
				break
			}
		}
	}
}

func TestToOKLabConstants(t *testing.T) {
	// White lands on L = 1 with the full-precision matrices.
	l, _, _ := toOKLab(Opaque(255, 255, 255))
	if math.Abs(l-1) > 1e-9 {
		t.Errorf("white L = %.12f, want 1", l)
	}
}
