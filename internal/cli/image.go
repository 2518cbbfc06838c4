package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadefinder/internal/colour"
	"github.com/jmylchreest/shadefinder/internal/image"
	"github.com/jmylchreest/shadefinder/internal/match"
)

func newImageCmd(a *app) *cobra.Command {
	var (
		opts    matchOptions
		colours int
	)

	cmd := &cobra.Command{
		Use:   "image <path>",
		Short: "Match the dominant colours of an image",
		Long: `Extract the dominant colours of an image with k-means clustering and
find the nearest palette shades for each.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Nearest shade for each of the 8 main colours
  shadefinder image wallpaper.jpg

  # Three candidates per colour, perceptual distance
  shadefinder image -c 4 -n 3 -m oklch logo.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			countSet := cmd.Flags().Changed("count")
			opts.applyDefaults(cmd.Flags(), a.config)
			if !countSet {
				opts.count = 1
			}
			return a.runImage(cmd, opts, colours, args[0])
		},
	}
	opts.register(cmd.Flags())
	cmd.Flags().IntVarP(&colours, "colours", "c", 8, "number of dominant colours to extract (1-256)")

	return cmd
}

func (a *app) runImage(cmd *cobra.Command, opts matchOptions, colours int, path string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}
	preview, err := newPreviewer(cmd.OutOrStdout(), opts.preview)
	if err != nil {
		return err
	}

	name, entries, err := a.entries(opts.palette, opts.paletteFile)
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	logger := a.logger.Named("image")

	img, err := image.NewFileLoader().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("loaded image", "path", path, "width", bounds.Dx(), "height", bounds.Dy())

	dominant, err := colour.NewKMeansExtractor().Extract(img, colours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extracted colours", "requested", colours, "found", len(dominant))

	matcher := match.NewMatcher(entries).WithMode(opts.mode).WithCount(opts.count)
	reports := make([]matchReport, 0, len(dominant))
	for _, d := range dominant {
		report := newMatchReport(d.Color.Hex(), d.Color, name, matcher.Mode(), matcher.Match(d.Color))
		report.Weight = d.Weight
		reports = append(reports, report)
	}

	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), reports)
	}
	return renderMatches(cmd.OutOrStdout(), opts.format, preview, reports...)
}
