// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import "fmt"

// A Point is an X,Y coordinate in the diagram's grid. The grid represents (0, 0) as the top-left
// of the diagram.
type Point struct {
	// The X coordinate of this point.
	X int
	// The Y coordinate of this point.
	Y int
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighboring point in direction d.
func (p Point) Step(d Dir) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DirTo returns the direction leading from p to an adjacent point q.
func (p Point) DirTo(q Point) (Dir, bool) {
	for _, d := range AllDirs {
		if p.Step(d) == q {
			return d, true
		}
	}
	return 0, false
}
