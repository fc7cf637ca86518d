package tile

import (
	"iter"
	"math"
)

// Ancestors returns an iterator over the parent chain of t, nearest first,
// ending with the level 0 tile.
func (t Tile) Ancestors() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for parent, ok := t.Parent(); ok; parent, ok = parent.Parent() {
			if !yield(parent) {
				return
			}
		}
	}
}

// Children returns an iterator over the children of t in quadrant order.
// It is empty for tiles at MaxLevel.
func (t Tile) Children() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for q := TopLeft; q <= BottomRight; q++ {
			child, ok := t.Child(q)
			if !ok || !yield(child) {
				return
			}
		}
	}
}

// Cover returns an iterator over all tiles at level intersecting the half-open
// rectangle [lo, hi), row by row. Rows outside the strip are skipped; columns
// continue into neighbouring offsets and stop at the ends of the Offset range.
// Rectangles with non-finite bounds cover nothing.
func Cover(level uint8, lo, hi Point) iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		if level > MaxLevel || !(lo[0] < hi[0] && lo[1] < hi[1]) {
			return
		}
		for _, v := range [...]float32{lo[0], lo[1], hi[0], hi[1]} {
			if math.IsInf(float64(v), 0) {
				return
			}
		}

		width := float64(LevelWidth(level))
		rows := int64(1) << level
		columns := 2 * rows

		// Columns of the first and past the last offset.
		first := float64(columns * math.MinInt16)
		last := float64(columns * (math.MaxInt16 + 1))

		x0 := int64(min(max(math.Floor(float64(lo[0])/width), first), last))
		x1 := int64(min(max(math.Ceil(float64(hi[0])/width), first), last))
		y0 := int64(min(max(math.Floor(float64(lo[1])/width), 0), float64(rows)))
		y1 := int64(min(max(math.Ceil(float64(hi[1])/width), 0), float64(rows)))

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				offset := x / columns
				if x%columns < 0 {
					offset--
				}
				t := Tile{
					Offset: int16(offset),
					Level:  level,
					X:      uint8(x - offset*columns),
					Y:      uint8(y),
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}
