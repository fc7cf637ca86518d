package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/eak1mov/go-striptiles/index"
	"github.com/eak1mov/go-striptiles/pattern"
	"github.com/eak1mov/go-striptiles/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type coverCmd struct {
	level           int
	x0, y0, x1, y1  float64
	outputIndexPath string
	pathPattern     string
}

func (c *coverCmd) Name() string     { return "cover" }
func (c *coverCmd) Synopsis() string { return "write an index of tiles covering a rectangle" }
func (c *coverCmd) Usage() string {
	return "tilegrid cover -z <level> -x0 <x> -y0 <y> -x1 <x> -y1 <y> -o <path> [-p <pattern>]\n"
}
func (c *coverCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.level, "z", 0, "Tile level")
	f.Float64Var(&c.x0, "x0", 0, "Rectangle min X")
	f.Float64Var(&c.y0, "y0", 0, "Rectangle min Y")
	f.Float64Var(&c.x1, "x1", 2, "Rectangle max X (exclusive)")
	f.Float64Var(&c.y1, "y1", 1, "Rectangle max Y (exclusive)")
	f.StringVar(&c.outputIndexPath, "o", "", "Output index file path")
	f.StringVar(&c.pathPattern, "p", "", "Print tile paths using this pattern, e.g. tiles/{o}/{z}/{x}/{y}.png")
}

func (c *coverCmd) coverItems(level uint8) []index.Item {
	lo := tile.Point{float32(c.x0), float32(c.y0)}
	hi := tile.Point{float32(c.x1), float32(c.y1)}

	var items []index.Item
	for t := range tile.Cover(level, lo, hi) {
		items = append(items, index.NewItem(t))
	}
	index.Sort(items)

	slog.Debug("covered rectangle", "level", level, "lo", lo, "hi", hi, "tiles", len(items))
	return items
}

func (c *coverCmd) writeIndex(items []index.Item, paths io.Writer) error {
	var matcher *pattern.Matcher
	if c.pathPattern != "" {
		var err error
		if matcher, err = pattern.NewMatcher(c.pathPattern); err != nil {
			return err
		}
	}

	file, err := os.Create(c.outputIndexPath)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := bufio.NewWriter(file)

	bar := progressbar.NewOptions(len(items),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	for chunk := range slices.Chunk(items, 4096) {
		if err := index.WriteAll(chunk, writer); err != nil {
			return err
		}
		if matcher != nil {
			for _, item := range chunk {
				if _, err := fmt.Fprintln(paths, pattern.Format(matcher.Pattern(), item.Tile())); err != nil {
					return err
				}
			}
		}
		bar.Add(len(chunk))
	}

	bar.Finish()
	fmt.Fprintln(os.Stderr)

	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Close()
}

func (c *coverCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	level, err := checkLevel(c.level, tile.MaxLevel)
	if err != nil {
		slog.Error("cover", "error", err)
		return subcommands.ExitUsageError
	}
	if c.outputIndexPath == "" {
		slog.Error("cover", "error", "missing output index path")
		return subcommands.ExitUsageError
	}

	items := c.coverItems(level)
	if len(items) == 0 {
		slog.Warn("rectangle covers no tiles")
	}

	if err := c.writeIndex(items, os.Stdout); err != nil {
		slog.Error("cover", "error", err)
		return subcommands.ExitFailure
	}

	slog.Info("index written", "path", c.outputIndexPath, "tiles", len(items))
	return subcommands.ExitSuccess
}
