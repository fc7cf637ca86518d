package index_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/eak1mov/go-striptiles/index"
	"github.com/eak1mov/go-striptiles/internal"
	"github.com/eak1mov/go-striptiles/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriteReadAll(t *testing.T) {
	var items []index.Item
	position := uint64(0)
	for tl := range internal.Tiles(3, -123, 0) {
		item := index.NewItem(tl)
		item.Position = position
		item.Length = uint32(tl.Level) + 1
		position += uint64(item.Length)
		items = append(items, item)
	}

	var buffer bytes.Buffer
	require.NoError(t, index.WriteAll(items, &buffer))
	require.Equal(t, 17*len(items), buffer.Len())

	got, err := index.ReadAll(buffer.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("ReadAll mismatch (-want+got):\n%v", diff)
	}
}

func TestReadAllEmpty(t *testing.T) {
	items, err := index.ReadAll(nil)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestReadAllTruncated(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, index.WriteAll([]index.Item{index.NewItem(internal.Sample)}, &buffer))

	_, err := index.ReadAll(buffer.Bytes()[:buffer.Len()-1])
	require.ErrorIs(t, err, index.ErrTruncated)
}

func TestItem(t *testing.T) {
	item := index.Item{Offset: -123, Level: 3, X: 9, Y: 4, Length: 10, Position: 1 << 40}
	require.Equal(t, internal.Sample, item.Tile())
	require.Equal(t, index.Location{Position: 1 << 40, Length: 10}, item.Location())
}

func TestSort(t *testing.T) {
	items := []index.Item{
		index.NewItem(tile.Tile{Offset: 2}),
		index.NewItem(internal.Sample),
		index.NewItem(tile.Tile{Level: 1, X: 1}),
		index.NewItem(tile.Tile{Level: 0, X: 1}),
	}
	index.Sort(items)

	var got []tile.Tile
	for _, item := range items {
		got = append(got, item.Tile())
	}
	want := []tile.Tile{
		internal.Sample,
		{Level: 0, X: 1},
		{Level: 1, X: 1},
		{Offset: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort mismatch (-want+got):\n%v", diff)
	}
	require.True(t, slices.IsSortedFunc(got, func(a, b tile.Tile) int {
		return int(a.Offset) - int(b.Offset)
	}))
}
