// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"testing"

	"github.com/maruel/ut"
)

func TestRuleString(t *testing.T) {
	t.Parallel()
	data := []struct {
		rule Rule
		want string
	}{
		{
			Rule{StartMatch(CharOf('-'), Dirs{E, W}, StringOf("-+")), Rendering{Draw: "M {RO} L {O}"}},
			`start '-' (E,W) "-+" draw "M {RO} L {O}";`,
		},
		{
			Rule{EndMatch(AnyChar(), Dirs{E}, CharOf('>')), Rendering{Draw: "L {C}", Attrs: []Attr{{"a", `\`}}}},
			`end ANY (E) '>' draw "L {C}" attrs [("a", "\")];`,
		},
		{
			Rule{LoopMatch(StringOf("-="), Dirs{W}, CharOf('.'), Dirs{S}, StringOf("|:")), Rendering{Draw: "M {C}"}},
			`loop "-=" (W) '.' (S) "|:" draw "M {C}";`,
		},
		{
			Rule{StepMatch(AnyChar(), AllDirs, CharOf('\''), Dirs{N, E}, AnyChar()), Rendering{Draw: ""}},
			`step ANY (N,NE,E,SE,S,SW,W,NW) ''' (N,E) ANY draw "";`,
		},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.want, line.rule.String())
	}
}

func TestRenderingAttributes(t *testing.T) {
	t.Parallel()
	data := []struct {
		attrs []Attr
		want  []Attr
	}{
		{nil, nil},
		{[]Attr{{"fill", "#fff"}}, []Attr{{"fill", "#fff"}}},
		{
			[]Attr{{"fill", "#fff"}, {"stroke", "red"}, {"fill", "#000"}},
			[]Attr{{"fill", "#000"}, {"stroke", "red"}},
		},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.want, Rendering{Attrs: line.attrs}.Attributes())
	}
}

func TestRuleEqual(t *testing.T) {
	t.Parallel()
	a := Rule{StartMatch(CharOf('-'), Dirs{E}, AnyChar()), Rendering{Draw: "M {C}"}}
	b := a
	b.Match.CurrDirs = Dirs{E}
	ut.AssertEqual(t, true, a.Equal(b))
	b.Rendering.Attrs = []Attr{}
	ut.AssertEqual(t, false, a.Equal(b))
	b = a
	b.Match.CurrDirs = Dirs{W}
	ut.AssertEqual(t, false, a.Equal(b))
}

func TestDir(t *testing.T) {
	t.Parallel()
	for i, d := range AllDirs {
		got, ok := ParseDir(d.String())
		ut.AssertEqualIndex(t, i, true, ok)
		ut.AssertEqualIndex(t, i, d, got)
		ut.AssertEqualIndex(t, i, d, d.Opposite().Opposite())
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		ut.AssertEqualIndex(t, i, [2]int{-dx, -dy}, [2]int{ox, oy})
	}
	_, ok := ParseDir("n")
	ut.AssertEqual(t, false, ok)
	ut.AssertEqual(t, "(N,SW)", Dirs{N, SW}.String())
	ut.AssertEqual(t, true, Dirs{N, SW}.Contains(SW))
	ut.AssertEqual(t, false, Dirs{N, SW}.Contains(S))
}
