// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"testing"

	"github.com/maruel/ut"
)

func TestNewGrid(t *testing.T) {
	t.Parallel()
	data := []struct {
		input    string
		tabWidth int
		size     Point
		rows     []string
	}{
		{"+-+\n| |\n+-+\n", 8, Point{X: 3, Y: 3}, []string{"+-+", "| |", "+-+"}},
		{"a\nabc\n\n\n", 8, Point{X: 3, Y: 2}, []string{"a  ", "abc"}},
		{"a\r\nbb\r\n", 8, Point{X: 2, Y: 2}, []string{"a ", "bb"}},
		{"\tx\nab\tc", 4, Point{X: 5, Y: 2}, []string{"    x", "ab  c"}},
		{"\tx", 0, Point{X: 2, Y: 1}, []string{"\tx"}},
		{"\n  -\n", 8, Point{X: 3, Y: 2}, []string{"   ", "  -"}},
		{"é-é", 8, Point{X: 3, Y: 1}, []string{"é-é"}},
	}
	for i, line := range data {
		g, err := NewGrid([]byte(line.input), line.tabWidth)
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, line.size, g.Size())
		for y, row := range line.rows {
			got := make([]rune, 0, g.Size().X)
			for x := 0; x < g.Size().X; x++ {
				got = append(got, g.At(Point{X: x, Y: y}))
			}
			ut.AssertEqualIndex(t, i, row, string(got))
		}
	}
}

func TestNewGridEmpty(t *testing.T) {
	t.Parallel()
	for i, input := range []string{"", "\n", "  \n\t\n", "\r\n"} {
		g, err := NewGrid([]byte(input), 8)
		ut.AssertEqualIndex(t, i, ErrEmptyGrid, err)
		ut.AssertEqualIndex(t, i, (*Grid)(nil), g)
	}
}

func TestGridGlyph(t *testing.T) {
	t.Parallel()
	g, err := NewGrid([]byte("+ -\n|"), 8)
	ut.AssertEqual(t, nil, err)
	data := []struct {
		p  Point
		r  rune
		ok bool
	}{
		{Point{X: 0, Y: 0}, '+', true},
		{Point{X: 1, Y: 0}, ' ', false},
		{Point{X: 2, Y: 0}, '-', true},
		{Point{X: 0, Y: 1}, '|', true},
		{Point{X: 2, Y: 1}, ' ', false},
		{Point{X: -1, Y: 0}, 0, false},
		{Point{X: 3, Y: 0}, 0, false},
		{Point{X: 0, Y: 2}, 0, false},
	}
	for i, line := range data {
		r, ok := g.Glyph(line.p)
		ut.AssertEqualIndex(t, i, line.ok, ok)
		ut.AssertEqualIndex(t, i, line.r, r)
	}
	r, ok := g.Neighbor(Point{}, S)
	ut.AssertEqual(t, '|', r)
	ut.AssertEqual(t, true, ok)
	_, ok = g.Lookup(Point{})(E)
	ut.AssertEqual(t, false, ok)
}

func TestPointDirTo(t *testing.T) {
	t.Parallel()
	p := Point{X: 3, Y: 3}
	for i, d := range AllDirs {
		got, ok := p.DirTo(p.Step(d))
		ut.AssertEqualIndex(t, i, true, ok)
		ut.AssertEqualIndex(t, i, d, got)
		ut.AssertEqualIndex(t, i, p, p.Step(d).Step(d.Opposite()))
	}
	_, ok := p.DirTo(Point{X: 5, Y: 3})
	ut.AssertEqual(t, false, ok)
}
