package tilecode_test

import (
	"slices"
	"testing"

	"github.com/eak1mov/go-striptiles/internal"
	"github.com/eak1mov/go-striptiles/tile"
	"github.com/eak1mov/go-striptiles/tilecode"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	for tl := range internal.Tiles(tile.MaxLevel, -123, 0, 42) {
		if diff := cmp.Diff(tl, tilecode.Decode(tl.Offset, tilecode.Encode(tl))); diff != "" {
			t.Errorf("Decode(Encode(%v)) mismatch (-want+got):\n%v", tl, diff)
		}
	}
}

func TestEncodeIsDense(t *testing.T) {
	var codes []uint64
	for tl := range internal.Tiles(4, 0) {
		codes = append(codes, tilecode.Encode(tl))
	}
	slices.Sort(codes)
	for i, code := range codes {
		require.Equal(t, uint64(i), code)
	}
}

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		tile tile.Tile
		want uint64
	}{
		{tile.Tile{Level: 0, X: 0, Y: 0}, 0},
		{tile.Tile{Level: 0, X: 1, Y: 0}, 1},
		{tile.Tile{Level: 1, X: 0, Y: 0}, 2},
		{tile.Tile{Level: 1, X: 2, Y: 0}, 6},
		{tile.Tile{Offset: 9, Level: 2, X: 0, Y: 0}, 10},
	} {
		require.Equal(t, tc.want, tilecode.Encode(tc.tile), "Encode(%v)", tc.tile)
	}
}

func TestCompare(t *testing.T) {
	tiles := []tile.Tile{
		{Offset: 1, Level: 0, X: 0, Y: 0},
		{Offset: 0, Level: 1, X: 3, Y: 1},
		internal.Sample,
		{Offset: 0, Level: 0, X: 1, Y: 0},
		{Offset: 0, Level: 0, X: 0, Y: 0},
	}
	slices.SortFunc(tiles, tilecode.Compare)

	want := []tile.Tile{
		internal.Sample,
		{Offset: 0, Level: 0, X: 0, Y: 0},
		{Offset: 0, Level: 0, X: 1, Y: 0},
		{Offset: 0, Level: 1, X: 3, Y: 1},
		{Offset: 1, Level: 0, X: 0, Y: 0},
	}
	if diff := cmp.Diff(want, tiles); diff != "" {
		t.Errorf("SortFunc(Compare) mismatch (-want+got):\n%v", diff)
	}
}
