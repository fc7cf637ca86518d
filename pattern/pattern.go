// Package pattern formats tiles into paths like "tiles/{o}/{z}/{x}/{y}.png"
// and matches such paths back to tiles.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eak1mov/go-striptiles/tile"
)

var (
	ErrInvalidPattern = errors.New("striptiles: invalid pattern")
	ErrNoMatch        = errors.New("striptiles: path does not match pattern")
)

var placeholders = []struct {
	name   string
	regexp string
}{
	{"{o}", `(?P<o>-?\d+)`},
	{"{z}", `(?P<z>\d+)`},
	{"{x}", `(?P<x>\d+)`},
	{"{y}", `(?P<y>\d+)`},
}

func validate(pattern string) error {
	for _, p := range placeholders {
		if strings.Count(pattern, p.name) != 1 {
			return fmt.Errorf("%w: placeholder %v must appear exactly once", ErrInvalidPattern, p.name)
		}
	}
	return nil
}

// Format substitutes the tile coordinates into pattern.
func Format(pattern string, t tile.Tile) string {
	return strings.NewReplacer(
		"{o}", strconv.Itoa(int(t.Offset)),
		"{z}", strconv.Itoa(int(t.Level)),
		"{x}", strconv.Itoa(int(t.X)),
		"{y}", strconv.Itoa(int(t.Y)),
	).Replace(pattern)
}

// Matcher extracts tiles from paths produced by Format.
type Matcher struct {
	pattern string
	regexp  *regexp.Regexp
}

func NewMatcher(pattern string) (*Matcher, error) {
	if err := validate(pattern); err != nil {
		return nil, err
	}

	expr := regexp.QuoteMeta(pattern)
	for _, p := range placeholders {
		expr = strings.Replace(expr, regexp.QuoteMeta(p.name), p.regexp, 1)
	}
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return &Matcher{pattern: pattern, regexp: re}, nil
}

func (m *Matcher) Pattern() string {
	return m.pattern
}

// Match returns the tile encoded in path.
func (m *Matcher) Match(path string) (tile.Tile, error) {
	matches := m.regexp.FindStringSubmatch(path)
	if matches == nil {
		return tile.Tile{}, fmt.Errorf("%w: %q", ErrNoMatch, path)
	}
	group := func(name string) string {
		return matches[m.regexp.SubexpIndex(name)]
	}

	offset, err := strconv.ParseInt(group("o"), 10, 16)
	if err != nil {
		return tile.Tile{}, fmt.Errorf("offset in %q: %w", path, err)
	}
	level, err := strconv.ParseUint(group("z"), 10, 8)
	if err != nil {
		return tile.Tile{}, fmt.Errorf("level in %q: %w", path, err)
	}
	x, err := strconv.ParseUint(group("x"), 10, 8)
	if err != nil {
		return tile.Tile{}, fmt.Errorf("x in %q: %w", path, err)
	}
	y, err := strconv.ParseUint(group("y"), 10, 8)
	if err != nil {
		return tile.Tile{}, fmt.Errorf("y in %q: %w", path, err)
	}

	return tile.Tile{
		Offset: int16(offset),
		Level:  uint8(level),
		X:      uint8(x),
		Y:      uint8(y),
	}, nil
}
