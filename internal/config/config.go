// Package config resolves default settings for shadefinder from the
// environment and an optional .env file. Command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/shadefinder/internal/colour"
	"github.com/jmylchreest/shadefinder/internal/match"
	"github.com/jmylchreest/shadefinder/internal/palette"
)

// Environment variables read by WithEnvConfig.
const (
	EnvPalette     = "SHADEFINDER_PALETTE"
	EnvPaletteFile = "SHADEFINDER_PALETTE_FILE"
	EnvMode        = "SHADEFINDER_MODE"
	EnvCount       = "SHADEFINDER_COUNT"
)

// Config holds the defaults used by the match commands.
type Config struct {
	Palette     palette.Source
	PaletteFile string
	Mode        colour.DistanceMode
	Count       int
}

// Default returns the built-in defaults: general palette, rgb distance,
// five matches.
func Default() Config {
	return Config{
		Palette: palette.SourceGeneral,
		Mode:    colour.ModeRGB,
		Count:   match.DefaultCount,
	}
}

// Validate checks the configuration for values no command could use.
func (c Config) Validate() error {
	if _, err := palette.ParseSource(string(c.Palette)); err != nil {
		return err
	}
	if _, err := colour.ParseDistanceMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("match count must be at least 1, got %d", c.Count)
	}
	return nil
}

// Builder assembles a Config from defaults, dotenv files and the environment.
type Builder struct {
	config   Config
	useEnv   bool
	envFiles []string
	lookup   func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithConfig replaces the starting configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig reads SHADEFINDER_* variables from the environment.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithDotEnv loads the given files (".env" when none are given) into the
// process environment before it is read. Missing files are ignored and
// variables already set are not overwritten.
func (b *Builder) WithDotEnv(files ...string) *Builder {
	if len(files) == 0 {
		files = []string{".env"}
	}
	b.envFiles = append(b.envFiles, files...)
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup, for tests.
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build resolves the configuration. Environment values that cannot be
// parsed are errors rather than silently ignored.
func (b *Builder) Build() (Config, error) {
	config := b.config

	for _, file := range b.envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	if b.useEnv {
		if v, ok := b.lookup(EnvPalette); ok && v != "" {
			src, err := palette.ParseSource(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", EnvPalette, err)
			}
			config.Palette = src
		}
		if v, ok := b.lookup(EnvPaletteFile); ok && v != "" {
			config.PaletteFile = v
		}
		if v, ok := b.lookup(EnvMode); ok && v != "" {
			mode, err := colour.ParseDistanceMode(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", EnvMode, err)
			}
			config.Mode = mode
		}
		if v, ok := b.lookup(EnvCount); ok && v != "" {
			count, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: invalid count %q: %w", EnvCount, v, err)
			}
			config.Count = count
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
