package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/eak1mov/go-striptiles/tile"
	"github.com/google/subcommands"
)

type locateCmd struct {
	level int
	px    float64
	py    float64
}

func (c *locateCmd) Name() string     { return "locate" }
func (c *locateCmd) Synopsis() string { return "find the tile enclosing a point" }
func (c *locateCmd) Usage() string {
	return "tilegrid locate -z <level> -px <x> -py <y>\n"
}
func (c *locateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.level, "z", 0, "Tile level")
	f.Float64Var(&c.px, "px", 0, "Point X")
	f.Float64Var(&c.py, "py", 0, "Point Y, in [0, 1)")
}

func (c *locateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	level, err := checkLevel(c.level, math.MaxUint8)
	if err != nil {
		slog.Error("locate", "error", err)
		return subcommands.ExitUsageError
	}

	if err := c.locate(os.Stdout, level); err != nil {
		slog.Error("locate", "error", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *locateCmd) locate(w io.Writer, level uint8) error {
	position := tile.Point{float32(c.px), float32(c.py)}
	t := tile.EnclosingPoint(level, position)
	if !t.Valid() || !t.Contains(position) {
		slog.Warn("point is outside the tiled strip", "position", position, "tile", t)
	}

	_, err := fmt.Fprintf(w, "tile         %v\ntop left     %v\nbottom right %v\n",
		t, t.TopLeft(), t.BottomRight())
	return err
}
