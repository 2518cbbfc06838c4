// Package cli provides the command-line interface for shadefinder.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadefinder/internal/config"
	"github.com/jmylchreest/shadefinder/internal/palette"
	"github.com/jmylchreest/shadefinder/internal/version"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	logger hclog.Logger
	config config.Config
	index  *palette.Index

	verbose bool
	quiet   bool
	envFile string
}

// NewRootCmd builds the shadefinder command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "shadefinder",
		Short: "Find the nearest palette colours to any colour",
		Long: `shadefinder matches an arbitrary colour against a curated palette and
lists the closest shades.

Colours may be given as hex (#f0a, #ff00aa, #ff00aa80), rgb()/rgba(),
CSS colour names (magenta, rebeccapurple) or any other CSS colour
notation such as hsl(), hwb(), lab() or oklch().
Distances are measured either as straight RGB distance or perceptually
in OKLCH.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with SHADEFINDER_* defaults")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newImageCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up logging, configuration and the built-in palettes.
func (a *app) init(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	cfg, err := config.NewBuilder().
		WithDotEnv(a.envFile).
		WithEnvConfig().
		Build()
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger.Debug("configuration resolved",
		"palette", cfg.Palette, "palette_file", cfg.PaletteFile, "mode", cfg.Mode, "count", cfg.Count)

	index, err := palette.NewBuiltinIndex()
	if err != nil {
		return fmt.Errorf("failed to load built-in palettes: %w", err)
	}
	a.index = index

	return nil
}

// filePalettePrefix namespaces a palette file whose name would shadow a
// built-in palette.
const filePalettePrefix = "file:"

// entries resolves the palette to match against: a palette file when one
// is given, otherwise the named built-in palette.
func (a *app) entries(src palette.Source, file string) (string, []palette.Entry, error) {
	if file != "" {
		def, err := palette.LoadFile(file)
		if err != nil {
			return "", nil, err
		}
		if _, err := palette.ParseSource(def.Name); err == nil {
			def.Name = filePalettePrefix + def.Name
		}
		a.index.Add(def)
		a.logger.Debug("loaded palette file", "path", file, "name", def.Name, "shades", def.Len())
		src = palette.Source(def.Name)
	}

	entries, err := a.index.Entries(string(src))
	if err != nil {
		return "", nil, err
	}
	a.logger.Debug("palette selected", "palette", src, "entries", len(entries))
	return string(src), entries, nil
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), version.GetInfo())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
