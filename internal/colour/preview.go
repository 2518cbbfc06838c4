package colour

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const defaultSwatchWidth = 8

// Previewer renders colour swatches for a terminal.
// The colour profile decides how much of the colour survives: true colour,
// 256 colours, 16 colours or none at all.
type Previewer struct {
	out *termenv.Output
}

// NewPreviewer creates a Previewer that detects the colour profile of w.
func NewPreviewer(w io.Writer) *Previewer {
	return &Previewer{out: termenv.NewOutput(w)}
}

// NewPreviewerWithProfile creates a Previewer with a fixed colour profile.
func NewPreviewerWithProfile(w io.Writer, profile termenv.Profile) *Previewer {
	return &Previewer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Enabled reports whether swatches will carry any colour.
func (p *Previewer) Enabled() bool {
	return p.out.Profile != termenv.Ascii
}

// Swatch returns a solid block of the given width in colour c.
func (p *Previewer) Swatch(c Color, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	return p.out.String(strings.Repeat(" ", width)).
		Background(p.out.Color(c.Hex())).
		String()
}

// Label returns text centred on a block of colour c, drawn in black or white
// depending on which reads better.
func (p *Previewer) Label(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return p.out.String(displayText).
		Background(p.out.Color(c.Hex())).
		Foreground(p.out.Color(ReadableOn(c).Hex())).
		String()
}
