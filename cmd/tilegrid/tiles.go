package main

import (
	"fmt"
	"math"

	"github.com/eak1mov/go-striptiles/pattern"
	"github.com/eak1mov/go-striptiles/tile"
)

const tileFormat = "{o}/{z}/{x}/{y}"

var tileMatcher, _ = pattern.NewMatcher(tileFormat)

// parseTile parses tiles written as "offset/level/x/y".
func parseTile(s string) (tile.Tile, error) {
	t, err := tileMatcher.Match(s)
	if err != nil {
		return tile.Tile{}, fmt.Errorf("invalid tile %q (want %s): %w", s, tileFormat, err)
	}
	return t, nil
}

func checkLevel(level int, maxLevel int) (uint8, error) {
	if level < 0 || level > maxLevel || level > math.MaxUint8 {
		return 0, fmt.Errorf("invalid level %d, want 0..%d", level, maxLevel)
	}
	return uint8(level), nil
}
