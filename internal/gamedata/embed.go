// Package gamedata provides embedded game assets and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the map, chrome layout and entity definitions at build time.
//
//go:embed *.json *.txt
var dataFS embed.FS
