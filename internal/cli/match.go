package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadefinder/internal/match"
)

func newMatchCmd(a *app) *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match <colour> [colour...]",
		Short: "Find the nearest palette shades to a colour",
		Long: `Find the palette shades closest to one or more colours.

Colours may be hex, rgb()/rgba(), CSS colour names or other CSS colour
notations such as hsl(), hwb() or oklch().
Quote colours containing spaces or parentheses.

Examples:
  # Five nearest shades in the general palette
  shadefinder match "#fe0101"

  # Perceptual distance against the additional palette
  shadefinder match -m oklch -p additional rebeccapurple

  # Three matches for several colours as JSON
  shadefinder match -n 3 -f json "rgb(12, 200, 90)" teal

  # Match against your own palette
  shadefinder match --palette-file brand.yaml "#336699"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyDefaults(cmd.Flags(), a.config)
			return a.runMatch(cmd, opts, args)
		},
	}
	opts.register(cmd.Flags())

	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, opts matchOptions, inputs []string) error {
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

	logger := a.logger.Named("match")
	matcher := match.NewMatcher(entries).WithMode(opts.mode).WithCount(opts.count)

	reports := make([]matchReport, 0, len(inputs))
	for _, input := range inputs {
		target, results, err := matcher.MatchString(input)
		if err != nil {
			return fmt.Errorf("failed to match: %w", err)
		}
		logger.Debug("matched colour", "input", input, "hex", target.Hex(), "mode", matcher.Mode(), "results", len(results))
		reports = append(reports, newMatchReport(input, target, name, matcher.Mode(), results))
	}

	return renderMatches(cmd.OutOrStdout(), opts.format, preview, reports...)
}
