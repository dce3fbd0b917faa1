// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Lookup reports the character of the neighbor in a direction. ok is false
// when there is no cell there.
type Lookup func(d Dir) (r rune, ok bool)

// Heading records the directions a match settled on. In is the direction of
// travel when arriving at the cell; Out is the direction of the successor.
type Heading struct {
	In     Dir
	Out    Dir
	HasIn  bool
	HasOut bool
}

func (h Heading) String() string {
	in, out := "-", "-"
	if h.HasIn {
		in = h.In.String()
	}
	if h.HasOut {
		out = h.Out.String()
	}
	return in + ">" + out
}

// A Hit is the rule governing one cell.
type Hit struct {
	// Index is the rule's position in its table.
	Index int
	// Rule is a copy owned by the Hit.
	Rule    Rule
	Heading Heading
}

// Kind returns the shape of the rule that fired.
func (h Hit) Kind() MatchKind {
	return h.Rule.Match.Kind
}

// Match returns the first rule, in declaration order, whose pattern holds for
// a cell holding focal with neighbors look. ok is false when no rule applies;
// the cell then draws nothing.
func (t *Table) Match(focal rune, look Lookup) (Hit, bool) {
	return t.match(focal, look, allKinds)
}

var (
	allKinds   = kindSet{Loop: true, Step: true, Start: true, End: true}
	startKinds = kindSet{Loop: true, Start: true}
)

type kindSet [4]bool

func (t *Table) match(focal rune, look Lookup, kinds kindSet) (Hit, bool) {
	for i, r := range t.rules {
		if !kinds[r.Match.Kind] {
			continue
		}
		if h, ok := r.Match.eval(focal, look); ok {
			return Hit{Index: i, Rule: r.clone(), Heading: h}, true
		}
	}
	return Hit{}, false
}

// Continue is Match for a cell reached while walking a path: the stroke
// arrived travelling in direction in from a cell holding prev. Only step, loop
// and end rules are considered.
func (t *Table) Continue(focal, prev rune, in Dir, look Lookup) (Hit, bool) {
	for i, r := range t.rules {
		m := r.Match
		switch m.Kind {
		case Start:
			continue
		case End:
			if m.Curr.Matches(focal, true) && m.PrevDirs.Contains(in) && m.Prev.Matches(prev, true) {
				return Hit{Index: i, Rule: r.clone(), Heading: Heading{In: in, HasIn: true}}, true
			}
		case Step, Loop:
			if !m.Curr.Matches(focal, true) || !m.PrevDirs.Contains(in) || !m.Prev.Matches(prev, true) {
				continue
			}
			if q, ok := firstDir(m.CurrDirs, m.Next, look); ok {
				return Hit{Index: i, Rule: r.clone(), Heading: Heading{In: in, Out: q, HasIn: true, HasOut: true}}, true
			}
		default:
			panic(fmt.Errorf("internal error; unknown MatchKind %d", m.Kind))
		}
	}
	return Hit{}, false
}

// eval tests the pattern against one cell.
func (m Match) eval(focal rune, look Lookup) (Heading, bool) {
	if !m.Curr.Matches(focal, true) {
		return Heading{}, false
	}
	switch m.Kind {
	case Start:
		if q, ok := firstDir(m.CurrDirs, m.Next, look); ok {
			return Heading{Out: q, HasOut: true}, true
		}
	case End:
		if p, ok := firstDir(opposites(m.PrevDirs), m.Prev, look); ok {
			return Heading{In: p.Opposite(), HasIn: true}, true
		}
	case Step, Loop:
		// prevDirs is the outer loop, currDirs the inner one.
		for _, p := range m.PrevDirs {
			if c, ok := look(p.Opposite()); !m.Prev.Matches(c, ok) {
				continue
			}
			if q, ok := firstDir(m.CurrDirs, m.Next, look); ok {
				return Heading{In: p, Out: q, HasIn: true, HasOut: true}, true
			}
			// The successor search does not depend on p.
			return Heading{}, false
		}
	default:
		panic(fmt.Errorf("internal error; unknown MatchKind %d", m.Kind))
	}
	return Heading{}, false
}

// firstDir returns the first direction of ds whose neighbor is in cs.
func firstDir(ds Dirs, cs CharSet, look Lookup) (Dir, bool) {
	for _, d := range ds {
		if c, ok := look(d); cs.Matches(c, ok) {
			return d, true
		}
	}
	return 0, false
}

func opposites(ds Dirs) Dirs {
	out := make(Dirs, len(ds))
	for i, d := range ds {
		out[i] = d.Opposite()
	}
	return out
}

// Resolved is the drawing fragment produced for one cell.
type Resolved struct {
	Kind MatchKind
	// Rule is the index of the rule that fired.
	Rule    int
	Heading Heading
	Draw    string
	Attrs   []Attr
}

// Resolve fills the anchor placeholders of the hit's draw template.
func (h Hit) Resolve(cell Point, geom Geometry) (Resolved, error) {
	draw, err := expandTemplate(h.Rule.Rendering.Draw, func(name string) (string, error) {
		return geom.Anchor(name, cell, h.Heading)
	})
	if err != nil {
		return Resolved{}, fmt.Errorf("rule %d (%s): %w", h.Index, h.Rule.Match.Kind, err)
	}
	return Resolved{
		Kind:    h.Rule.Match.Kind,
		Rule:    h.Index,
		Heading: h.Heading,
		Draw:    draw,
		Attrs:   cloneAttrs(h.Rule.Rendering.Attrs),
	}, nil
}

// Select matches a cell and resolves the winning rule. ok is false when no
// rule applies, which is not an error.
func (t *Table) Select(focal rune, look Lookup, cell Point, geom Geometry) (Resolved, bool, error) {
	h, ok := t.Match(focal, look)
	if !ok {
		return Resolved{}, false, nil
	}
	r, err := h.Resolve(cell, geom)
	if err != nil {
		return Resolved{}, false, err
	}
	return r, true, nil
}

// MatchGrid runs Match on every cell of g, using up to workers goroutines
// (GOMAXPROCS when workers <= 0). The result is indexed row-major and holds nil
// where no rule applies.
func (t *Table) MatchGrid(ctx context.Context, g *Grid, workers int) ([]*Hit, error) {
	return t.matchGrid(ctx, g, workers, allKinds)
}

func (t *Table) matchGrid(ctx context.Context, g *Grid, workers int, kinds kindSet) ([]*Hit, error) {
	size := g.Size()
	hits := make([]*Hit, size.X*size.Y)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := 0; y < size.Y; y++ {
		y := y
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < size.X; x++ {
				p := Point{X: x, Y: y}
				ch, ok := g.Glyph(p)
				if !ok {
					continue
				}
				if h, ok := t.match(ch, g.Lookup(p), kinds); ok {
					hits[y*size.X+x] = &h
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}
