// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"fmt"
	"strings"
)

// Object is an interface for working with open paths, closed paths, or text found in a diagram.
type Object interface {
	fmt.Stringer
	// Points returns the cells covered by this Object, in drawing order. Every object has at least
	// one point.
	Points() []Point
	// HasPoint returns true if the cell lies inside a closed path.
	HasPoint(Point) bool
	// IsClosed is true if the object is a path that returns to its first cell.
	IsClosed() bool
	// IsText returns true if the object is textual and does not represent a path.
	IsText() bool
	// Text returns the characters under Points.
	Text() []rune
	// Draw returns the SVG path data assembled from the rules that fired, or "" for text.
	Draw() string
	// Attrs returns the attributes collected from those rules.
	Attrs() []Attr
}

// object implements Object and represents one of an open path, a closed path, or text.
type object struct {
	points   []Point
	isText   bool
	text     []rune
	isClosed bool
	segments []string
	attrs    []Attr
}

func (o *object) Points() []Point {
	return o.points
}

func (o *object) IsClosed() bool {
	return o.isClosed
}

func (o *object) IsText() bool {
	return o.isText
}

func (o *object) Text() []rune {
	return o.text
}

func (o *object) Draw() string {
	if o.isText {
		return ""
	}
	d := strings.Join(o.segments, " ")
	if o.isClosed {
		d += " Z"
	}
	return d
}

func (o *object) Attrs() []Attr {
	return Rendering{Attrs: o.attrs}.Attributes()
}

func (o *object) String() string {
	if o.IsText() {
		return fmt.Sprintf("Text{%s %q}", o.points[0], string(o.text))
	}
	if o.isClosed {
		return fmt.Sprintf("Loop{%v}", o.points)
	}
	return fmt.Sprintf("Path{%v}", o.points)
}

// HasPoint determines whether the supplied point lives inside the object, using the cells of a
// closed path as polygon vertices. The algorithm implemented comes from the more efficient,
// less-clever version at http://alienryderflex.com/polygon/.
func (o *object) HasPoint(p Point) bool {
	if !o.isClosed {
		return false
	}
	hasPoint := false
	px, py := float64(p.X), float64(p.Y)
	n := len(o.points)
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := float64(o.points[i].X), float64(o.points[i].Y)
		xj, yj := float64(o.points[j].X), float64(o.points[j].Y)
		if (yi < py && yj >= py || yj < py && yi >= py) && (xi <= px || xj <= px) {
			if xi+(py-yi)/(yj-yi)*(xj-xi) < px {
				hasPoint = !hasPoint
			}
		}
		j = i
	}
	return hasPoint
}

// seal finalizes the object, capturing the characters under its points.
func (o *object) seal(g *Grid) {
	o.text = make([]rune, len(o.points))
	for i, p := range o.points {
		o.text[i] = g.At(p)
	}
}

// objects implements a sortable collection of Object interfaces.
type objects []Object

func (o objects) Len() int      { return len(o) }
func (o objects) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Less returns in order top most, then left most.
func (o objects) Less(i, j int) bool {
	l := o[i]
	r := o[j]
	lt := l.IsText()
	rt := r.IsText()
	if lt != rt {
		return rt
	}
	lp := l.Points()[0]
	rp := r.Points()[0]
	if lp.Y != rp.Y {
		return lp.Y < rp.Y
	}
	return lp.X < rp.X
}
