// Package index provides a flat binary index of tiles.
package index

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/eak1mov/go-striptiles/tile"
	"github.com/eak1mov/go-striptiles/tilecode"
)

var ErrTruncated = errors.New("striptiles: truncated index")

// Item represents a single record in the index, mapping a tile to the location
// (Position, Length) of its data in an external file.
// Records are stored packed, little-endian, in field order.
type Item struct {
	Offset   int16
	Level    uint8
	X        uint8
	Y        uint8
	Length   uint32
	Position uint64
}

// Location is the byte range of tile data inside a file.
type Location struct {
	Position uint64
	Length   uint64
}

// NewItem returns an item for t with an empty location.
func NewItem(t tile.Tile) Item {
	return Item{Offset: t.Offset, Level: t.Level, X: t.X, Y: t.Y}
}

func (i Item) Tile() tile.Tile {
	return tile.Tile{Offset: i.Offset, Level: i.Level, X: i.X, Y: i.Y}
}

func (i Item) Location() Location {
	return Location{Position: i.Position, Length: uint64(i.Length)}
}

// Sort orders items by tile, see tilecode.Compare.
func Sort(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return tilecode.Compare(a.Tile(), b.Tile())
	})
}

func WriteAll(items []Item, writer io.Writer) error {
	return binary.Write(writer, binary.LittleEndian, items)
}

func ReadAll(indexData []byte) ([]Item, error) {
	size := binary.Size(Item{})
	if len(indexData)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncated, len(indexData), size)
	}

	items := make([]Item, len(indexData)/size)
	err := binary.Read(bytes.NewReader(indexData), binary.LittleEndian, items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
