package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadefinder/internal/colour"
)

type parseReport struct {
	Input     string       `json:"input"`
	Hex       string       `json:"hex"`
	HexAlpha  string       `json:"hex_alpha"`
	RGBA      string       `json:"rgba"`
	Color     colour.Color `json:"color"`
	OKLCH     oklchJSON    `json:"oklch"`
	Luminance float64      `json:"luminance"`
}

// oklchJSON carries OKLCH with an omitted hue for greys, since JSON has no NaN.
type oklchJSON struct {
	L float64  `json:"l"`
	C float64  `json:"c"`
	H *float64 `json:"h,omitempty"`
}

func newParseReport(input string, c colour.Color) parseReport {
	o := colour.ToOKLCH(c)
	lch := oklchJSON{L: o.L, C: o.C}
	if !o.Achromatic() {
		h := o.H
		lch.H = &h
	}
	return parseReport{
		Input:     input,
		Hex:       c.Hex(),
		HexAlpha:  c.HexAlpha(),
		RGBA:      c.String(),
		Color:     c,
		OKLCH:     lch,
		Luminance: colour.Luminance(c),
	}
}

func newParseCmd(a *app) *cobra.Command {
	var (
		format  string
		preview string
	)

	cmd := &cobra.Command{
		Use:   "parse <colour>",
		Short: "Show how a colour is read",
		Long: `Parse a colour and show its canonical forms: hex, rgb()/rgba() and OKLCH.

Examples:
  shadefinder parse rebeccapurple
  shadefinder parse "hsl(200 80% 40%)"
  shadefinder parse -f json "#ff00aa80"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			p, err := newPreviewer(cmd.OutOrStdout(), preview)
			if err != nil {
				return err
			}

			c, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse: %w", err)
			}
			a.logger.Named("parse").Debug("parsed colour", "input", args[0], "rgba", c.String())

			return renderParse(cmd.OutOrStdout(), format, p, newParseReport(args[0], c))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, plain, json)")
	cmd.Flags().StringVar(&preview, "preview", previewAuto, "colour swatches (auto, always, never)")

	return cmd
}

func renderParse(w io.Writer, format string, preview *colour.Previewer, r parseReport) error {
	switch format {
	case formatJSON:
		return writeJSON(w, r)
	case formatPlain:
		_, err := fmt.Fprintln(w, r.HexAlpha)
		return err
	}

	if preview.Enabled() {
		fmt.Fprintln(w, preview.Label(r.Color, r.Hex, 11))
	}
	fmt.Fprintf(w, "Input:      %s\n", r.Input)
	fmt.Fprintf(w, "Hex:        %s\n", r.Hex)
	fmt.Fprintf(w, "Hex+alpha:  %s\n", r.HexAlpha)
	fmt.Fprintf(w, "RGB:        %s\n", r.RGBA)
	fmt.Fprintf(w, "OKLCH:      %s\n", colour.ToOKLCH(r.Color).String())
	fmt.Fprintf(w, "Luminance:  %.3f\n", r.Luminance)
	return nil
}
