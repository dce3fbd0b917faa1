// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		input   []string
		strings []string
		draws   []string
	}{
		{
			"box",
			[]string{
				"+--+",
				"|  |",
				"+--+",
			},
			[]string{"Loop{[(0,0) (0,1) (0,2) (1,2) (2,2) (3,2) (3,1) (3,0) (2,0) (1,0)]}"},
			[]string{"M 4,6.5 L 4,26 L 4,32.5 L 16,32.5 L 24,32.5 L 28,32.5 L 28,13 L 28,6.5 L 16,6.5 L 8,6.5 Z"},
		},
		{
			"rounded box",
			[]string{
				".--.",
				"|  |",
				"'--'",
			},
			[]string{"Loop{[(0,0) (0,1) (0,2) (1,2) (2,2) (3,2) (3,1) (3,0) (2,0) (1,0)]}"},
			[]string{"M 8,6.5 Q 4,6.5 4,13 L 4,26 Q 4,32.5 8,32.5 L 16,32.5 L 24,32.5 Q 28,32.5 28,26 L 28,13 Q 28,6.5 24,6.5 L 16,6.5 L 8,6.5 Z"},
		},
		{
			"arrow",
			[]string{"-->"},
			[]string{"Path{[(0,0) (1,0) (2,0)]}"},
			[]string{"M 0,6.5 L 8,6.5 L 16,6.5 L 20,6.5 l 3,0 m -3,-3 l 3,3 l -3,3 m 0,-3"},
		},
		{
			"line and text",
			[]string{"-- ab"},
			[]string{"Path{[(0,0) (1,0)]}", `Text{(3,0) "ab"}`},
			[]string{"M 0,6.5 L 8,6.5 L 16,6.5", ""},
		},
		{
			"text only",
			[]string{"hello world", "", "  bye   now"},
			[]string{`Text{(0,0) "hello world"}`, `Text{(2,2) "bye"}`, `Text{(8,2) "now"}`},
			[]string{"", "", ""},
		},
		{
			"dead end is text",
			[]string{"-<"},
			[]string{`Text{(0,0) "-<"}`},
			[]string{""},
		},
		{
			"box with label",
			[]string{
				"+----+",
				"| hi |",
				"+----+",
			},
			[]string{
				"Loop{[(0,0) (0,1) (0,2) (1,2) (2,2) (3,2) (4,2) (5,2) (5,1) (5,0) (4,0) (3,0) (2,0) (1,0)]}",
				`Text{(2,1) "hi"}`,
			},
			nil,
		},
	}
	for _, line := range data {
		line := line
		t.Run(line.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGrid([]byte(strings.Join(line.input, "\n")), 8)
			require.NoError(t, err)
			s, err := Trace(context.Background(), g, DefaultTable(), testScale, TraceOptions{Workers: 2})
			require.NoError(t, err)
			assert.Equal(t, g.Size(), s.Size)
			got := make([]string, len(s.Objects))
			for i, o := range s.Objects {
				got[i] = o.String()
			}
			assert.Equal(t, line.strings, got)
			if line.draws == nil {
				return
			}
			draws := make([]string, len(s.Objects))
			for i, o := range s.Objects {
				draws[i] = o.Draw()
			}
			assert.Equal(t, line.draws, draws)
		})
	}
}

func TestTraceCoversEveryCellOnce(t *testing.T) {
	t.Parallel()
	g, err := NewGrid([]byte(`
  +-----+    .---.
  | box |--->|   |
  +-----+    '---'
`), 8)
	require.NoError(t, err)
	s, err := Trace(context.Background(), g, DefaultTable(), testScale, TraceOptions{})
	require.NoError(t, err)
	seen := map[Point]bool{}
	for _, o := range s.Objects {
		for _, p := range o.Points() {
			assert.False(t, seen[p], "%s claimed twice", p)
			seen[p] = true
		}
	}
	for y := 0; y < g.Size().Y; y++ {
		for x := 0; x < g.Size().X; x++ {
			p := Point{X: x, Y: y}
			if _, ok := g.Glyph(p); ok {
				assert.True(t, seen[p], "%s %q not traced", p, g.At(p))
			}
		}
	}
}

func TestTraceAnchorError(t *testing.T) {
	t.Parallel()
	tbl := mustTable(t, `start '-' (E) '-' draw "M {Nope}";`)
	g, err := NewGrid([]byte("--"), 8)
	require.NoError(t, err)
	s, err := Trace(context.Background(), g, tbl, testScale, TraceOptions{})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownAnchor)
}

func TestTraceCancelled(t *testing.T) {
	t.Parallel()
	g, err := NewGrid([]byte("+-+\n| |\n+-+"), 8)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Trace(ctx, g, DefaultTable(), testScale, TraceOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObjectHasPoint(t *testing.T) {
	t.Parallel()
	box := &object{
		points:   []Point{{0, 0}, {0, 2}, {4, 2}, {4, 0}},
		isClosed: true,
	}
	assert.True(t, box.HasPoint(Point{X: 2, Y: 1}))
	assert.False(t, box.HasPoint(Point{X: 5, Y: 1}))
	assert.False(t, box.HasPoint(Point{X: 2, Y: 3}))
	box.isClosed = false
	assert.False(t, box.HasPoint(Point{X: 2, Y: 1}))
}
