// shadefinder - nearest palette colour lookup
//
// shadefinder matches any CSS colour against curated palettes and lists
// the closest named shades by RGB or OKLCH distance.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/shadefinder/internal/cli"
)

func main() {
	cli.Execute()
}
