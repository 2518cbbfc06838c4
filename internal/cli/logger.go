package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the command logger. Verbose enables debug output;
// quiet limits output to errors. Warnings are shown otherwise.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "shadefinder",
		Output: out,
		Level:  level,
	})
}
