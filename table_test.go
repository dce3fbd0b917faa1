// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTables(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"default", "demo"}, BuiltinTableNames())
	for _, name := range BuiltinTableNames() {
		tbl, err := BuiltinTable(name)
		require.NoError(t, err)
		assert.Equal(t, name, tbl.Name())
		assert.NotZero(t, tbl.Len())
	}
	_, err := BuiltinTable("nope")
	assert.True(t, errors.Is(err, errors.NotFound), "%v", err)
	assert.Same(t, DefaultTable(), DefaultTable())
}

func TestLoadTable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	good := filepath.Join(dir, "good.rules")
	require.NoError(t, os.WriteFile(good, []byte(`
start '-' (E,W) "-+" draw "M {RO} L {O}";
end ANY ANY '-' draw "L {RI}";
`), 0o600))
	bad := filepath.Join(dir, "bad.rules")
	require.NoError(t, os.WriteFile(bad, []byte(`start '-' (E,W) "-+" draw "M {C}"`), 0o600))

	tbl, err := LoadTable(good)
	require.NoError(t, err)
	assert.Equal(t, good, tbl.Name())
	assert.Equal(t, 2, tbl.Len())

	tbl, err = LoadTable("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", tbl.Name())

	_, err = LoadTable(bad)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Contains(t, err.Error(), bad)

	_, err = LoadTable(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, errors.NotFound), "%v", err)
}

func TestTableIsACopy(t *testing.T) {
	t.Parallel()
	rules := MustParseRules(`start '-' (E,W) "-+" draw "M {C}" attrs [("stroke", "red")];`)
	tbl := NewTable("copy", rules)
	rules[0].Rendering.Draw = "changed"
	rules[0].Match.CurrDirs[0] = N
	rules[0].Rendering.Attrs[0].Value = "changed"

	n := neighbors{E: '+'}
	want, ok, err := tbl.Select('-', n.look, Point{}, testScale)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Attr{{"stroke", "red"}}, want.Attrs)

	want.Attrs[0].Value = "changed"
	tbl.Rules()[0].Match.CurrDirs[0] = N
	tbl.Rules()[0].Rendering.Attrs[0].Value = "changed"
	tbl.Rule(0).Match.CurrDirs[1] = N
	h, ok := tbl.Match('-', n.look)
	require.True(t, ok)
	h.Rule.Match.CurrDirs[0] = N
	h.Rule.Rendering.Attrs[0].Name = "changed"

	got, ok, err := tbl.Select('-', n.look, Point{}, testScale)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Attr{{"stroke", "red"}}, got.Attrs)
	assert.Equal(t, Heading{Out: E, HasOut: true}, got.Heading)
	assert.Equal(t, `start '-' (E,W) "-+" draw "M {C}" attrs [("stroke", "red")];`, tbl.Rule(0).String())
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	tbl := mustTable(t, `
start '+' ANY ANY draw "M {C}";
start '-' (E) '-' draw "M {C}";
step ANY ANY '-' (E) '-' draw "L {O}";
end ANY ANY '-' draw "L {RI}";
`)
	assert.Equal(t, TableSummary{
		Name:   t.Name(),
		Rules:  4,
		ByKind: map[string]int{"start": 2, "step": 1, "end": 1},
	}, tbl.Describe())
}
