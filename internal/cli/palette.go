package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadefinder/internal/colour"
	"github.com/jmylchreest/shadefinder/internal/palette"
)

func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect the palettes colours are matched against",
	}
	cmd.AddCommand(newPaletteListCmd(a))
	cmd.AddCommand(newPaletteSourcesCmd(a))
	return cmd
}

func newPaletteListCmd(a *app) *cobra.Command {
	var (
		src     palette.Source
		file    string
		family  string
		format  string
		preview string
	)
	src = palette.SourceGeneral

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shades of a palette",
		Long: `List every usable shade of a palette in match order.

Shades with an unreadable hex and repeated family/shade pairs are left out,
exactly as when matching.

Examples:
  shadefinder palette list
  shadefinder palette list -p additional --family "Deep Orange"
  shadefinder palette list --palette-file brand.yaml -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("palette") {
				src = a.config.Palette
			}
			if !cmd.Flags().Changed("palette-file") {
				file = a.config.PaletteFile
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			p, err := newPreviewer(cmd.OutOrStdout(), preview)
			if err != nil {
				return err
			}

			name, entries, err := a.entries(src, file)
			if err != nil {
				return fmt.Errorf("failed to load palette: %w", err)
			}

			if family != "" {
				def, _ := a.index.Definition(name)
				if _, ok := def.Family(family); !ok {
					return fmt.Errorf("family not found in %s palette: %s", name, family)
				}
				entries = filterFamily(entries, family)
			}

			return renderEntries(cmd.OutOrStdout(), format, p, entries)
		},
	}
	cmd.Flags().VarP(&src, "palette", "p", "built-in palette (general, additional)")
	cmd.Flags().StringVar(&file, "palette-file", "", "JSON or YAML palette file to list instead")
	cmd.Flags().StringVar(&family, "family", "", "only list shades of this family")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, plain, json)")
	cmd.Flags().StringVar(&preview, "preview", previewAuto, "colour swatches (auto, always, never)")

	return cmd
}

func newPaletteSourcesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the built-in palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"Palette", "Families", "Shades"})
			table.SetRightAlign(1)
			table.SetRightAlign(2)
			for _, name := range a.index.Names() {
				def, _ := a.index.Definition(name)
				entries, err := a.index.Entries(name)
				if err != nil {
					return err
				}
				table.AddRow([]string{name, strconv.Itoa(len(def.Families)), strconv.Itoa(len(entries))})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func filterFamily(entries []palette.Entry, family string) []palette.Entry {
	var out []palette.Entry
	for _, e := range entries {
		if e.Family == family {
			out = append(out, e)
		}
	}
	return out
}

func renderEntries(w io.Writer, format string, preview *colour.Previewer, entries []palette.Entry) error {
	switch format {
	case formatJSON:
		if entries == nil {
			entries = []palette.Entry{}
		}
		return writeJSON(w, entries)
	case formatPlain:
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Label(), e.Color.Hex())
		}
		return nil
	}

	headers := []string{"Family", "Shade", "Hex", "RGB"}
	if preview.Enabled() {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)
	for _, e := range entries {
		row := []string{e.Family, e.Shade, e.Color.Hex(), e.Color.String()}
		if preview.Enabled() {
			row = append([]string{preview.Swatch(e.Color, swatchWidth)}, row...)
		}
		table.AddRow(row)
	}
	fmt.Fprint(w, table.Render())
	return nil
}
