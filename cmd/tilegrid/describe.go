package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eak1mov/go-striptiles/tile"
	"github.com/eak1mov/go-striptiles/tilecode"
	"github.com/google/subcommands"
)

type describeCmd struct {
	tile string
}

func (c *describeCmd) Name() string     { return "describe" }
func (c *describeCmd) Synopsis() string { return "print geometry and ancestry of a tile" }
func (c *describeCmd) Usage() string {
	return "tilegrid describe -t <offset/level/x/y>\n"
}
func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tile, "t", "", "Tile as offset/level/x/y")
}

func (c *describeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	t, err := parseTile(c.tile)
	if err != nil {
		slog.Error("describe", "error", err)
		return subcommands.ExitUsageError
	}

	if err := describe(os.Stdout, t); err != nil {
		slog.Error("describe", "error", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func describe(w io.Writer, t tile.Tile) error {
	if !t.Valid() {
		slog.Warn("tile coordinates are out of range for its level", "tile", t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "tile         %v\n", t)
	fmt.Fprintf(&b, "width        %v\n", t.Width())
	fmt.Fprintf(&b, "top left     %v\n", t.TopLeft())
	fmt.Fprintf(&b, "bottom right %v\n", t.BottomRight())
	if t.Valid() {
		fmt.Fprintf(&b, "code         %v\n", tilecode.Encode(t))
	}
	if q, ok := t.PositionInParent(); ok {
		fmt.Fprintf(&b, "quadrant     %v\n", q)
	}
	for ancestor := range t.Ancestors() {
		fmt.Fprintf(&b, "ancestor     %v\n", ancestor)
	}
	for child := range t.Children() {
		fmt.Fprintf(&b, "child        %v\n", child)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
