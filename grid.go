// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrEmptyGrid is returned by NewGrid for input without any line.
var ErrEmptyGrid = errors.New("monartist: diagram has no content")

// Grid is a diagram laid out as rows of characters, padded with spaces to a
// rectangle.
type Grid struct {
	// (0,0) is top left.
	cells []char
	size  Point
}

// NewGrid returns the Grid for a newline-delimited diagram.
//
// Expands tabs to tabWidth as whitespace.
func NewGrid(data []byte, tabWidth int) (*Grid, error) {
	data = bytes.TrimRight(data, "\n")
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{}
	lines := bytes.Split(data, []byte("\n"))
	g.size.Y = len(lines)
	for i, line := range lines {
		lines[i] = expandTabs(bytes.TrimRight(line, "\r"), tabWidth)
		if n := utf8.RuneCount(lines[i]); n > g.size.X {
			g.size.X = n
		}
	}
	g.cells = make([]char, g.size.X*g.size.Y)
	for y, line := range lines {
		x := 0
		for len(line) > 0 {
			r, l := utf8.DecodeRune(line)
			g.cells[y*g.size.X+x] = char(r)
			x++
			line = line[l:]
		}
		for ; x < g.size.X; x++ {
			g.cells[y*g.size.X+x] = ' '
		}
	}
	return g, nil
}

// Size returns the width and height of the grid.
func (g *Grid) Size() Point {
	return g.size
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size.X && p.Y >= 0 && p.Y < g.size.Y
}

// At returns the character at p, which must be in bounds.
func (g *Grid) At(p Point) rune {
	return rune(g.at(p))
}

func (g *Grid) at(p Point) char {
	return g.cells[p.Y*g.size.X+p.X]
}

// Glyph returns the character at p. ok is false off the grid and on blank
// cells.
func (g *Grid) Glyph(p Point) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	c := g.at(p)
	return rune(c), c.isGlyph()
}

// Neighbor returns the glyph next to p in direction d.
func (g *Grid) Neighbor(p Point, d Dir) (rune, bool) {
	return g.Glyph(p.Step(d))
}

// Lookup returns the neighbor accessor of the cell at p.
func (g *Grid) Lookup(p Point) Lookup {
	return func(d Dir) (rune, bool) {
		return g.Neighbor(p, d)
	}
}

func expandTabs(line []byte, tabWidth int) []byte {
	if tabWidth <= 0 || bytes.IndexByte(line, '\t') < 0 {
		return line
	}
	out := make([]byte, 0, len(line))
	col := 0
	for len(line) > 0 {
		r, l := utf8.DecodeRune(line)
		if r == '\t' {
			for n := tabWidth - col%tabWidth; n > 0; n-- {
				out = append(out, ' ')
				col++
			}
		} else {
			out = append(out, line[:l]...)
			col++
		}
		line = line[l:]
	}
	return out
}
