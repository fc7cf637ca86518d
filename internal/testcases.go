// Package internal holds fixtures shared by the package tests.
package internal

import (
	"iter"

	"github.com/eak1mov/go-striptiles/tile"
)

// Sample is a tile away from the origin with an odd column and an even row.
var Sample = tile.Tile{Offset: -123, Level: 3, X: 9, Y: 4}

// Tiles returns an iterator over every valid tile up to maxLevel in each of the
// given offsets, level by level.
func Tiles(maxLevel uint8, offsets ...int16) iter.Seq[tile.Tile] {
	return func(yield func(tile.Tile) bool) {
		for _, offset := range offsets {
			for level := range min(maxLevel, tile.MaxLevel) + 1 {
				for x := range 2 << level {
					for y := range 1 << level {
						t := tile.Tile{Offset: offset, Level: level, X: uint8(x), Y: uint8(y)}
						if !yield(t) {
							return
						}
					}
				}
			}
		}
	}
}
