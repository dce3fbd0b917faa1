// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"context"
	"sort"

	"github.com/pnkfelix/mon-artist/internal/logging"
)

// Scene is the set of objects found in a diagram.
type Scene struct {
	Size    Point
	Objects []Object
}

// TraceOptions tunes Trace.
type TraceOptions struct {
	// Workers bounds the goroutines of the matching pre-pass; <= 0 uses
	// GOMAXPROCS.
	Workers int
}

// tracer walks paths through a grid, consuming each cell at most once.
type tracer struct {
	grid    *Grid
	table   *Table
	geom    Geometry
	visited []bool
}

// Trace stitches the per-cell drawing fragments of g into paths and collects
// the remaining characters as text.
//
// Paths begin at cells governed by a start or loop rule, scanning top to
// bottom and left to right, and are extended one cell at a time with
// Table.Continue until an end rule fires or nothing matches. A path begun by
// a loop rule that walks back into its first cell is closed.
func Trace(ctx context.Context, g *Grid, t *Table, geom Geometry, opts TraceOptions) (*Scene, error) {
	logger := logging.GetLogger("trace")
	done := logging.LogOperationStart(logger, "trace")
	defer done()

	// Hiding consumed cells only removes neighbors, so a cell that cannot
	// start a path on the pristine grid never will.
	cands, err := t.matchGrid(ctx, g, opts.Workers, startKinds)
	if err != nil {
		return nil, err
	}
	size := g.Size()
	tr := &tracer{grid: g, table: t, geom: geom, visited: make([]bool, size.X*size.Y)}

	var objs objects
	for y := 0; y < size.Y; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := 0; x < size.X; x++ {
			p := Point{X: x, Y: y}
			if cands[tr.index(p)] == nil || tr.isVisited(p) {
				continue
			}
			obj, err := tr.scanPath(p)
			if err != nil {
				return nil, err
			}
			if obj != nil {
				objs = append(objs, obj)
			}
		}
	}
	paths := len(objs)

	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := Point{X: x, Y: y}
			if tr.isVisited(p) {
				continue
			}
			if ch := g.at(p); ch.isGlyph() && ch.isTextStart() {
				objs = append(objs, tr.scanText(p))
			}
		}
	}

	sort.Sort(objs)
	logger.Debug().Int("paths", paths).Int("texts", len(objs)-paths).Msg("Traced diagram")
	return &Scene{Size: size, Objects: objs}, nil
}

// scanPath follows the path starting at start. It returns nil when no start
// or loop rule holds any more, or when the path would be a single cell.
func (tr *tracer) scanPath(start Point) (Object, error) {
	ch := tr.grid.At(start)
	h, ok := tr.table.match(ch, tr.lookup(start, nil), startKinds)
	if !ok {
		return nil, nil
	}
	o := &object{}
	if err := tr.add(o, start, h); err != nil {
		return nil, err
	}
	isLoop := h.Kind() == Loop
	cur, out := start, h.Heading.Out
	for {
		next := cur.Step(out)
		if isLoop && next == start && len(o.points) > 2 {
			o.isClosed = true
			break
		}
		nch, ok := tr.grid.Glyph(next)
		if !ok || tr.isVisited(next) {
			break
		}
		var reopen *Point
		if isLoop && len(o.points) > 1 {
			reopen = &start
		}
		nh, ok := tr.table.Continue(nch, tr.grid.At(cur), out, tr.lookup(next, reopen))
		if !ok {
			break
		}
		if err := tr.add(o, next, nh); err != nil {
			return nil, err
		}
		if nh.Kind() == End || !nh.Heading.HasOut {
			break
		}
		cur, out = next, nh.Heading.Out
	}

	if len(o.points) == 1 {
		// Discard 'path' of 1 point so it can still be read as text.
		tr.unvisit(start)
		return nil, nil
	}
	o.seal(tr.grid)
	return o, nil
}

func (tr *tracer) add(o *object, p Point, h Hit) error {
	res, err := h.Resolve(p, tr.geom)
	if err != nil {
		return err
	}
	tr.visit(p)
	o.points = append(o.points, p)
	o.segments = append(o.segments, res.Draw)
	o.attrs = append(o.attrs, res.Attrs...)
	return nil
}

// lookup returns the neighbor accessor of p on the grid where consumed cells
// are blank, except for reopen.
func (tr *tracer) lookup(p Point, reopen *Point) Lookup {
	return func(d Dir) (rune, bool) {
		n := p.Step(d)
		r, ok := tr.grid.Glyph(n)
		if !ok {
			return 0, false
		}
		if tr.isVisited(n) && (reopen == nil || *reopen != n) {
			return 0, false
		}
		return r, true
	}
}

// scanText extracts a line of text.
func (tr *tracer) scanText(start Point) Object {
	obj := &object{points: []Point{start}, isText: true}
	tr.visit(start)
	whiteSpaceStreak := 0
	cur := start
	for cur.X < tr.grid.size.X-1 {
		cur.X++
		if tr.isVisited(cur) {
			// Hit a path.
			break
		}
		ch := tr.grid.at(cur)
		if !ch.isTextCont() {
			break
		}
		if ch.isSpace() {
			whiteSpaceStreak++
			// Stop if hit 3 consecutive whitespace.
			if whiteSpaceStreak > 2 {
				break
			}
		} else {
			whiteSpaceStreak = 0
		}
		obj.points = append(obj.points, cur)
	}
	// TrimRight space.
	for len(obj.points) != 0 && tr.grid.at(obj.points[len(obj.points)-1]).isSpace() {
		obj.points = obj.points[:len(obj.points)-1]
	}
	for _, p := range obj.points {
		tr.visit(p)
	}
	obj.seal(tr.grid)
	return obj
}

func (tr *tracer) index(p Point) int {
	return p.Y*tr.grid.size.X + p.X
}

func (tr *tracer) isVisited(p Point) bool {
	return tr.visited[tr.index(p)]
}

func (tr *tracer) visit(p Point) {
	tr.visited[tr.index(p)] = true
}

func (tr *tracer) unvisit(p Point) {
	tr.visited[tr.index(p)] = false
}
