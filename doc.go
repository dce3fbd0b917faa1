// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package monartist turns ASCII diagrams into SVG by matching every character
// and its eight neighbors against a declarative rule table.
//
// A rule names the shape of the stroke passing through a cell (start, step,
// loop or end), the characters allowed in the cell, before it and after it,
// and the directions in which its neighbors may lie. When it matches, its
// draw template becomes a fragment of SVG path data:
//
//	# a `-` with another `-` or a `+` to the east or west starts a line
//	start '-' (E,W) "-+" draw "M {RO} L {O}";
//
// Rules are tried in the order they are written and the first one that holds
// wins. Tables are immutable and safe for concurrent use.
//
// Example usage:
//
//	t, err := monartist.LoadTable("default")
//	if err != nil {
//	    return err
//	}
//	svg, err := monartist.Render(ctx, diagram, t, 8, monartist.RenderOptions{
//	    Scale: monartist.Scale{X: 8, Y: 13},
//	}, monartist.TraceOptions{})
package monartist
