package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/shadefinder/internal/colour"
	"github.com/jmylchreest/shadefinder/internal/config"
	"github.com/jmylchreest/shadefinder/internal/palette"
)

// matchOptions are the flags shared by commands that rank palette entries.
type matchOptions struct {
	palette     palette.Source
	paletteFile string
	mode        colour.DistanceMode
	count       int
	format      string
	preview     string
}

func (o *matchOptions) register(fs *pflag.FlagSet) {
	o.palette = palette.SourceGeneral
	o.mode = colour.ModeRGB

	fs.VarP(&o.palette, "palette", "p", "built-in palette (general, additional)")
	fs.StringVar(&o.paletteFile, "palette-file", "", "JSON or YAML palette file to match against instead")
	fs.VarP(&o.mode, "mode", "m", "distance mode (rgb, oklch)")
	fs.IntVarP(&o.count, "count", "n", 5, "number of matches to show")
	fs.StringVarP(&o.format, "format", "f", formatTable, "output format (table, plain, json)")
	fs.StringVar(&o.preview, "preview", previewAuto, "colour swatches (auto, always, never)")
}

// applyDefaults fills every flag the user did not set from cfg.
func (o *matchOptions) applyDefaults(fs *pflag.FlagSet, cfg config.Config) {
	if !fs.Changed("palette") {
		o.palette = cfg.Palette
	}
	if !fs.Changed("palette-file") {
		o.paletteFile = cfg.PaletteFile
	}
	if !fs.Changed("mode") {
		o.mode = cfg.Mode
	}
	if !fs.Changed("count") {
		o.count = cfg.Count
	}
}
