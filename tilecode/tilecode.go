// Package tilecode maps tiles to compact integer codes.
//
// Codes are relative to the tile offset. Levels are laid out one after another,
// level L taking the 2*4^L codes starting at 2*(4^L-1)/3. Within a level the left
// square of the row comes before the right one, and each square is ordered along
// a Hilbert curve, so tiles close on the plane get close codes.
package tilecode

import (
	"cmp"
	"math/bits"

	"github.com/eak1mov/go-striptiles/tile"
	"github.com/google/hilbert"
)

// levelStart returns the number of codes used by all levels above level.
func levelStart(level uint8) uint64 {
	return 2 * (1<<(2*uint64(level)) - 1) / 3
}

// Encode returns the code of a valid tile. The offset is not part of the code.
func Encode(t tile.Tile) uint64 {
	side := 1 << t.Level
	h, _ := hilbert.NewHilbert(side)

	half := int(t.X) / side
	d, _ := h.MapInverse(int(t.X)%side, int(t.Y))

	return levelStart(t.Level) + uint64(half*side*side+d)
}

// Decode is the inverse of Encode for tiles in the given offset.
func Decode(offset int16, code uint64) tile.Tile {
	level := uint8((bits.Len64(3*code/2+1) - 1) / 2)
	rem := code - levelStart(level)

	side := 1 << level
	h, _ := hilbert.NewHilbert(side)

	half := int(rem) / (side * side)
	x, y, _ := h.Map(int(rem) % (side * side))

	return tile.Tile{
		Offset: offset,
		Level:  level,
		X:      uint8(half*side + x),
		Y:      uint8(y),
	}
}

// Compare orders tiles by offset, then by code.
func Compare(a, b tile.Tile) int {
	return cmp.Or(
		cmp.Compare(a.Offset, b.Offset),
		cmp.Compare(Encode(a), Encode(b)),
	)
}
