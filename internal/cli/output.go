package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/shadefinder/internal/colour"
	"github.com/jmylchreest/shadefinder/internal/match"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatPlain = "plain"
	formatJSON  = "json"
)

// Preview settings accepted by --preview.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

const swatchWidth = 4

func validateFormat(format string) error {
	switch format {
	case formatTable, formatPlain, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, plain, json)", format)
	}
}

// newPreviewer decides whether colour swatches are drawn.
// In auto mode swatches appear only when w is a terminal.
func newPreviewer(w io.Writer, setting string) (*colour.Previewer, error) {
	switch setting {
	case previewNever:
		return colour.NewPreviewerWithProfile(w, termenv.Ascii), nil
	case previewAlways:
		return colour.NewPreviewerWithProfile(w, termenv.TrueColor), nil
	case previewAuto, "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return colour.NewPreviewer(w), nil
		}
		return colour.NewPreviewerWithProfile(w, termenv.Ascii), nil
	default:
		return nil, fmt.Errorf("invalid preview setting: %s (valid: auto, always, never)", setting)
	}
}

// matchReport is the result of matching one query colour.
type matchReport struct {
	Input   string              `json:"input"`
	Color   colour.Color        `json:"color"`
	Hex     string              `json:"hex"`
	Palette string              `json:"palette"`
	Mode    colour.DistanceMode `json:"mode"`
	Weight  float64             `json:"weight,omitempty"`
	Matches []matchLine         `json:"matches"`
}

type matchLine struct {
	Family   string  `json:"family"`
	Shade    string  `json:"shade"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

func newMatchReport(input string, target colour.Color, paletteName string, mode colour.DistanceMode, results []match.Result) matchReport {
	lines := make([]matchLine, len(results))
	for i, r := range results {
		lines[i] = matchLine{
			Family:   r.Entry.Family,
			Shade:    r.Entry.Shade,
			Hex:      r.Entry.Hex,
			Distance: r.Distance,
		}
	}
	return matchReport{
		Input:   input,
		Color:   target,
		Hex:     target.Hex(),
		Palette: paletteName,
		Mode:    mode,
		Matches: lines,
	}
}

// renderMatches writes reports in the requested format. JSON output is a
// single object for one report and an array otherwise.
func renderMatches(w io.Writer, format string, preview *colour.Previewer, reports ...matchReport) error {
	switch format {
	case formatJSON:
		if len(reports) == 1 {
			return writeJSON(w, reports[0])
		}
		return writeJSON(w, reports)
	case formatPlain:
		for _, r := range reports {
			for _, m := range r.Matches {
				fmt.Fprintf(w, "%s %s\t%s\t%s\n", m.Family, m.Shade, m.Hex, r.Mode.FormatDistance(m.Distance))
			}
		}
		return nil
	default:
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprint(w, matchTable(r, preview))
		}
		return nil
	}
}

func matchTable(r matchReport, preview *colour.Previewer) string {
	var b strings.Builder

	heading := fmt.Sprintf("Nearest %s colours to %s (%s distance)", r.Palette, r.Color.String(), strings.ToUpper(string(r.Mode)))
	if r.Weight > 0 {
		heading += fmt.Sprintf(", %.1f%% of image", r.Weight*100)
	}
	if preview.Enabled() {
		heading = preview.Swatch(r.Color, swatchWidth) + " " + heading
	}
	b.WriteString(heading + "\n\n")

	headers := []string{"#", "Name", "Hex", "Δ"}
	if preview.Enabled() {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)
	table.SetRightAlign(len(headers) - 1)

	for i, m := range r.Matches {
		row := []string{strconv.Itoa(i + 1), m.Family + " " + m.Shade, m.Hex, r.Mode.FormatDistance(m.Distance)}
		if preview.Enabled() {
			if c, ok := colour.ParseHex(m.Hex); ok {
				row = append([]string{preview.Swatch(c, swatchWidth)}, row...)
			} else {
				row = append([]string{""}, row...)
			}
		}
		table.AddRow(row)
	}

	b.WriteString(table.Render())
	return b.String()
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
