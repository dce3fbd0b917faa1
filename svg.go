// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode"
)

const (
	defaultFont = "monospace"
	header      = "<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"
	watermark   = "<!-- Created with mon-artist -->\n"
	svgTag      = "<svg width=\"%dpx\" height=\"%dpx\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\">\n"
	titleTag    = "  <title>%s</title>\n"

	// Path related tag.
	pathTag = "    <path id=\"%s%d\"%s d=\"%s\" />\n"

	// Text related tag.
	textGroupTag = "  <g id=\"text\" stroke=\"none\" style=\"font-family:%s;font-size:%dpx\" >\n"
	textTag      = "    <text id=\"obj%d\" x=\"%g\" y=\"%g\" fill=\"%s\">%s</text>\n"

	// TODO(dhobsd): Fine tune.
	blurDef = `  <defs>
    <filter id="dsFilter" width="150%" height="150%">
      <feOffset result="offOut" in="SourceGraphic" dx="2" dy="2"/>
      <feColorMatrix result="matrixOut" in="offOut" type="matrix" values="0.2 0 0 0 0 0 0.2 0 0 0 0 0 0.2 0 0 0 0 0 1 0"/>
      <feGaussianBlur result="blurOut" in="matrixOut" stdDeviation="3"/>
      <feBlend in="SourceGraphic" in2="blurOut" mode="normal"/>
    </filter>
  </defs>
`
)

// RenderOptions controls SceneToSVG.
type RenderOptions struct {
	Scale      Scale
	FontFamily string
	FontSize   int
	// NoBlur disables the drop shadow of closed shapes.
	NoBlur bool
	// Name, when set, becomes the document title.
	Name string
}

// SceneToSVG serializes a traced scene.
func SceneToSVG(s *Scene, opts RenderOptions) []byte {
	font := opts.FontFamily
	if len(font) == 0 {
		font = defaultFont
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = opts.Scale.Y
	}
	scaleX, scaleY := opts.Scale.X, opts.Scale.Y
	// TODO(dhobsd): Generating the XML manually is a tad fishy but encoding/xml
	// enforces standard XML header and the end code would be significantly
	// larger. The down side is potential escaping errors.
	b := &bytes.Buffer{}
	_, _ = io.WriteString(b, header)
	_, _ = io.WriteString(b, watermark)
	_, _ = fmt.Fprintf(b, svgTag, (s.Size.X+1)*scaleX, (s.Size.Y+1)*scaleY)
	if opts.Name != "" {
		_, _ = fmt.Fprintf(b, titleTag, escape(opts.Name))
	}
	filter := ""
	if !opts.NoBlur {
		_, _ = io.WriteString(b, blurDef)
		filter = " filter=\"url(#dsFilter)\""
	}

	// 3 passes, first closed paths, then open paths, then text.
	_, _ = fmt.Fprintf(b, "  <g id=\"closed\"%s stroke=\"#000\" stroke-width=\"2\" fill=\"#88d\">\n", filter)
	for i, obj := range s.Objects {
		if obj.IsClosed() && !obj.IsText() {
			_, _ = fmt.Fprintf(b, pathTag, "closed", i, attrString(obj.Attrs()), escape(obj.Draw()))
		}
	}
	_, _ = io.WriteString(b, "  </g>\n")

	_, _ = io.WriteString(b, "  <g id=\"lines\" stroke=\"#000\" stroke-width=\"2\" fill=\"none\">\n")
	for i, obj := range s.Objects {
		if !obj.IsClosed() && !obj.IsText() {
			_, _ = fmt.Fprintf(b, pathTag, "open", i, attrString(obj.Attrs()), escape(obj.Draw()))
		}
	}
	_, _ = io.WriteString(b, "  </g>\n")

	_, _ = fmt.Fprintf(b, textGroupTag, escape(font), fontSize)
	for i, obj := range s.Objects {
		if obj.IsText() {
			topleft := obj.Points()[0]
			x := float64(topleft.X * scaleX)
			y := (float64(topleft.Y) + .75) * float64(scaleY)
			_, _ = fmt.Fprintf(b, textTag, i, x, y, textFill(s.Objects, topleft), escape(string(obj.Text())))
		}
	}
	_, _ = io.WriteString(b, "  </g>\n")

	_, _ = io.WriteString(b, "</svg>\n")
	return b.Bytes()
}

// textFill picks a readable color for text at p. Text inside a closed shape
// filled through a rule's "fill" attribute is contrasted against that fill.
func textFill(objs []Object, p Point) string {
	color := "#000"
	for _, o := range objs {
		if o.IsText() || !o.HasPoint(p) {
			continue
		}
		for _, a := range o.Attrs() {
			if a.Name != "fill" {
				continue
			}
			if c, err := textColor(a.Value); err == nil {
				color = c
			}
		}
	}
	return color
}

// ErrBadAttr means a rule attribute cannot be written on a path element.
var ErrBadAttr = errors.New("monartist: attribute cannot be emitted")

// attrString renders attrs, dropping those checkAttr rejects.
func attrString(attrs []Attr) string {
	out := ""
	for _, a := range attrs {
		if checkAttr(a.Name) != nil {
			continue
		}
		out += fmt.Sprintf(" %s=\"%s\"", a.Name, escape(a.Value))
	}
	return out
}

func checkAttr(name string) error {
	switch name {
	case "id", "d":
		return fmt.Errorf("%w: %q is written by the renderer", ErrBadAttr, name)
	}
	if !isXMLName(name) {
		return fmt.Errorf("%w: %q is not an XML name", ErrBadAttr, name)
	}
	return nil
}

func isXMLName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '_', r == ':':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// CheckAttrs reports the first rule attribute of t that SceneToSVG would
// have to drop.
func CheckAttrs(t *Table) error {
	for i, r := range t.rules {
		for _, a := range r.Rendering.Attrs {
			if err := checkAttr(a.Name); err != nil {
				return fmt.Errorf("rule %d (%s): %w", i, r.Match.Kind, err)
			}
		}
	}
	return nil
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}

// Render converts a diagram to SVG using the rules of t.
func Render(ctx context.Context, diagram []byte, t *Table, tabWidth int, opts RenderOptions, topts TraceOptions) ([]byte, error) {
	g, err := NewGrid(diagram, tabWidth)
	if err != nil {
		return nil, err
	}
	scene, err := Trace(ctx, g, t, opts.Scale, topts)
	if err != nil {
		return nil, err
	}
	return SceneToSVG(scene, opts), nil
}
