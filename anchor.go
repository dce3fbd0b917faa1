// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownAnchor means a draw template names a placeholder the geometry
	// does not define.
	ErrUnknownAnchor = errors.New("monartist: unknown anchor")
	// ErrAnchorUnavailable means the placeholder needs a direction the match did
	// not provide, such as {I} in a start rule.
	ErrAnchorUnavailable = errors.New("monartist: anchor unavailable for this match")
)

// Geometry turns anchor placeholders into coordinates.
type Geometry interface {
	// Anchor returns the formatted coordinate of the named anchor (without
	// braces) of cell, given the directions chosen by the match.
	Anchor(name string, cell Point, h Heading) (string, error)
}

// Scale is the Geometry of a grid whose cells are X by Y pixels.
//
// Anchors: C is the cell center; N, NE, E, SE, S, SW, W and NW are the
// midpoints of the cell edges and its corners; I is the edge toward the
// predecessor and O the edge toward the successor; RI and RO are I and O
// reflected through the center.
type Scale struct {
	X int
	Y int
}

// Center returns the pixel coordinates of the center of cell.
func (s Scale) Center(cell Point) (x, y float64) {
	return (float64(cell.X) + .5) * float64(s.X), (float64(cell.Y) + .5) * float64(s.Y)
}

func (s Scale) edge(cell Point, d Dir) string {
	x, y := s.Center(cell)
	dx, dy := d.Offset()
	return coord(x+float64(dx*s.X)/2, y+float64(dy*s.Y)/2)
}

// Anchor implements Geometry.
func (s Scale) Anchor(name string, cell Point, h Heading) (string, error) {
	switch name {
	case "C":
		return coord(s.Center(cell)), nil
	case "I", "RI":
		if !h.HasIn {
			return "", fmt.Errorf("%w: {%s} needs an incoming direction", ErrAnchorUnavailable, name)
		}
		if name == "I" {
			return s.edge(cell, h.In.Opposite()), nil
		}
		return s.edge(cell, h.In), nil
	case "O", "RO":
		if !h.HasOut {
			return "", fmt.Errorf("%w: {%s} needs an outgoing direction", ErrAnchorUnavailable, name)
		}
		if name == "O" {
			return s.edge(cell, h.Out), nil
		}
		return s.edge(cell, h.Out.Opposite()), nil
	}
	if d, ok := ParseDir(name); ok {
		return s.edge(cell, d), nil
	}
	return "", fmt.Errorf("%w: {%s}", ErrUnknownAnchor, name)
}

func coord(x, y float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + "," + strconv.FormatFloat(y, 'f', -1, 64)
}

// expandTemplate replaces every {NAME} of tmpl by resolve(NAME). A brace
// without a closing partner is copied as is.
func expandTemplate(tmpl string, resolve func(string) (string, error)) (string, error) {
	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			break
		}
		b.WriteString(tmpl[:open])
		v, err := resolve(tmpl[open+1 : open+end])
		if err != nil {
			return "", err
		}
		b.WriteString(v)
		tmpl = tmpl[open+end+1:]
	}
	b.WriteString(tmpl)
	return b.String(), nil
}

// Anchors returns the placeholder names used by a draw template, in order.
func Anchors(tmpl string) []string {
	var out []string
	_, _ = expandTemplate(tmpl, func(name string) (string, error) {
		out = append(out, name)
		return "", nil
	})
	return out
}

// CheckAnchors resolves every draw template of t once, reporting the first
// placeholder geom cannot serve for the rule's shape.
func CheckAnchors(t *Table, geom Geometry) error {
	for i, r := range t.rules {
		var h Heading
		switch r.Match.Kind {
		case Start:
			h = Heading{HasOut: true}
		case End:
			h = Heading{HasIn: true}
		case Step, Loop:
			h = Heading{HasIn: true, HasOut: true}
		default:
			panic(fmt.Errorf("internal error; unknown MatchKind %d", r.Match.Kind))
		}
		if _, err := (Hit{Index: i, Rule: r, Heading: h}).Resolve(Point{}, geom); err != nil {
			return err
		}
	}
	return nil
}
