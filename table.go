// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"embed"
	"os"
	"sort"
	"sync"

	"github.com/juju/errors"

	"github.com/pnkfelix/mon-artist/internal/logging"
)

// A Table is an ordered rule set. Earlier rules take precedence. A Table is
// never modified once built and may be shared between goroutines; every
// rule it hands out is a copy.
type Table struct {
	name  string
	rules []Rule
}

// NewTable returns a Table holding a deep copy of rules.
func NewTable(name string, rules []Rule) *Table {
	t := &Table{name: name, rules: make([]Rule, len(rules))}
	for i, r := range rules {
		t.rules[i] = r.clone()
	}
	return t
}

// ParseTable parses text into a Table.
func ParseTable(name, text string) (*Table, error) {
	rules, err := ParseRules(text)
	if err != nil {
		return nil, err
	}
	return &Table{name: name, rules: rules}, nil
}

// Name returns the name the table was built with.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rule returns the i-th rule in declaration order.
func (t *Table) Rule(i int) Rule {
	return t.rules[i].clone()
}

// Rules returns a deep copy of the rules in declaration order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.clone()
	}
	return out
}

// TableSummary counts the rules of a table per pattern shape.
type TableSummary struct {
	Name   string         `yaml:"name"`
	Rules  int            `yaml:"rules"`
	ByKind map[string]int `yaml:"by_kind"`
}

// Describe summarizes t.
func (t *Table) Describe() TableSummary {
	s := TableSummary{Name: t.name, Rules: len(t.rules), ByKind: map[string]int{}}
	for _, r := range t.rules {
		s.ByKind[r.Match.Kind.String()]++
	}
	return s
}

//go:embed tables/*.rules
var builtinFS embed.FS

var builtinSources = map[string]string{
	"default": "tables/default.rules",
	"demo":    "tables/demo.rules",
}

var (
	builtinOnce   sync.Once
	builtinTables map[string]*Table
	builtinErr    error
)

func loadBuiltins() {
	builtinTables = map[string]*Table{}
	for name, path := range builtinSources {
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			builtinErr = errors.Annotatef(err, "reading built-in table %q", name)
			return
		}
		t, err := ParseTable(name, string(data))
		if err != nil {
			builtinErr = errors.Annotatef(err, "parsing built-in table %q", name)
			return
		}
		builtinTables[name] = t
	}
}

// BuiltinTableNames lists the names accepted by BuiltinTable.
func BuiltinTableNames() []string {
	names := make([]string, 0, len(builtinSources))
	for n := range builtinSources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// BuiltinTable returns one of the tables compiled into the package.
func BuiltinTable(name string) (*Table, error) {
	builtinOnce.Do(loadBuiltins)
	if builtinErr != nil {
		return nil, builtinErr
	}
	t, ok := builtinTables[name]
	if !ok {
		return nil, errors.NotFoundf("built-in table %q", name)
	}
	return t, nil
}

// DefaultTable returns the "default" built-in table.
func DefaultTable() *Table {
	t, err := BuiltinTable("default")
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTable reads the rule file at nameOrPath. When no such file can be
// opened it falls back to the built-in table of that name.
func LoadTable(nameOrPath string) (*Table, error) {
	logger := logging.GetLogger("table")
	data, ferr := os.ReadFile(nameOrPath)
	if ferr == nil {
		t, err := ParseTable(nameOrPath, string(data))
		if err != nil {
			return nil, errors.Annotatef(err, "table file %s", nameOrPath)
		}
		logger.Debug().Str("path", nameOrPath).Int("rules", t.Len()).Msg("Loaded rule table from file")
		return t, nil
	}
	t, err := BuiltinTable(nameOrPath)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NewNotFound(ferr, "unknown table name or unreadable file "+nameOrPath)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("table", nameOrPath).Int("rules", t.Len()).Msg("Using built-in rule table")
	return t, nil
}
