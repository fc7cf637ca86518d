// Package tile provides the tile coordinate type of the strip tiling scheme.
//
// The plane is an infinite horizontal strip: Y spans [0, 1) and X is unbounded.
// Level 0 tiles are 1x1 squares; the strip is cut into cells of width 2 along X,
// each identified by an Offset, so that cell k spans X in [2k, 2k+2).
// Every level halves the tile width, giving 2^(level+1) columns and 2^level rows
// per cell.
package tile

import (
	"fmt"
	"math"
)

// MaxLevel is the deepest level whose columns still fit into Tile.X.
const MaxLevel = 7

// Point is a world-space position: X along the strip, Y across it.
type Point [2]float32

// Tile identifies a square cell at a given level.
//
// Tile is a plain value: constructors and methods never validate coordinates,
// callers are expected to keep X and Y within the ranges of the level (see Valid).
type Tile struct {
	Offset int16
	Level  uint8
	X      uint8
	Y      uint8
}

// Quadrant is the position of a tile inside its parent.
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	}
	return fmt.Sprintf("Quadrant(%d)", uint8(q))
}

// NewAtOrigin returns the tile of the cell at offset zero.
func NewAtOrigin(level, x, y uint8) Tile {
	return Tile{Offset: 0, Level: level, X: x, Y: y}
}

// EnclosingPoint returns the tile at the given level that contains position.
//
// Float to integer conversions truncate toward zero and saturate at the bounds
// of the field types. Points outside the strip (Y outside [0, 1), or X beyond the
// range of Offset) give saturated coordinates rather than an error.
func EnclosingPoint(level uint8, position Point) Tile {
	offset := float32(math.Floor(float64(position[0] / 2)))

	width := LevelWidth(level)
	x := (position[0] - offset*2) / width
	y := position[1] / width

	return Tile{
		Offset: saturateInt16(offset),
		Level:  level,
		X:      saturateUint8(x),
		Y:      saturateUint8(y),
	}
}

// LevelWidth returns the width of tiles at the given level, 2^-level.
// From level 128 on, 2^level overflows float32 and the width is zero.
func LevelWidth(level uint8) float32 {
	if level >= 128 {
		return 0
	}
	return 1 / float32(math.Ldexp(1, int(level)))
}

// Parent returns the tile one level up. Level 0 tiles have no parent.
func (t Tile) Parent() (Tile, bool) {
	if t.Level == 0 {
		return Tile{}, false
	}
	return Tile{
		Offset: t.Offset,
		Level:  t.Level - 1,
		X:      t.X / 2,
		Y:      t.Y / 2,
	}, true
}

// PositionInParent reports which quadrant of its parent t occupies.
// Level 0 tiles have no parent and report false.
func (t Tile) PositionInParent() (Quadrant, bool) {
	if t.Level == 0 {
		return 0, false
	}
	// Odd X is the right column, odd Y the bottom row.
	return Quadrant(t.X&1 | (t.Y&1)<<1), true
}

// Child returns the child of t in quadrant q.
// It reports false when the child coordinates would not fit into a Tile.
func (t Tile) Child(q Quadrant) (Tile, bool) {
	if t.Level >= MaxLevel || q > BottomRight {
		return Tile{}, false
	}
	return Tile{
		Offset: t.Offset,
		Level:  t.Level + 1,
		X:      t.X*2 + uint8(q&1),
		Y:      t.Y*2 + uint8(q>>1),
	}, true
}

func (t Tile) Width() float32 {
	return LevelWidth(t.Level)
}

// TopLeft returns the world-space corner with the smallest coordinates.
func (t Tile) TopLeft() Point {
	width := t.Width()
	return Point{
		2*float32(t.Offset) + float32(t.X)*width,
		float32(t.Y) * width,
	}
}

// BottomRight returns the corner opposite to TopLeft.
func (t Tile) BottomRight() Point {
	topLeft := t.TopLeft()
	width := t.Width()
	return Point{topLeft[0] + width, topLeft[1] + width}
}

// Contains reports whether p lies in the half-open square [TopLeft, BottomRight).
func (t Tile) Contains(p Point) bool {
	topLeft, bottomRight := t.TopLeft(), t.BottomRight()
	return topLeft[0] <= p[0] && p[0] < bottomRight[0] &&
		topLeft[1] <= p[1] && p[1] < bottomRight[1]
}

// Valid reports whether X and Y are within the ranges of the tile's level.
func (t Tile) Valid() bool {
	return t.Level <= MaxLevel && int(t.X) < 2<<t.Level && int(t.Y) < 1<<t.Level
}

// String formats the tile as "offset/level/x/y".
func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", t.Offset, t.Level, t.X, t.Y)
}

func saturateUint8(v float32) uint8 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}

func saturateInt16(v float32) int16 {
	switch {
	case v != v:
		return 0
	case v <= math.MinInt16:
		return math.MinInt16
	case v >= math.MaxInt16:
		return math.MaxInt16
	}
	return int16(v)
}
