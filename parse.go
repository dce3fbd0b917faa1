// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Quoted tokens carry no escapes: everything between the delimiters is taken
// verbatim, so `"\"` is the one-rune set containing a backslash.
var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Char", Pattern: `'[^\n]'`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),;\[\]]`},
})

var ruleParser = participle.MustBuild[ruleFile](
	participle.Lexer(ruleLexer),
	participle.Elide("Comment", "Whitespace"),
)

type ruleFile struct {
	Rules []*ruleStmt `@@*`
}

type ruleStmt struct {
	Pos lexer.Position

	Wide   *widePattern   `(  @@`
	Narrow *narrowPattern ` | @@ )`
	Draw   string         `"draw" @String`
	Attrs  []*attrPair    `( "attrs" "[" @@ ( "," @@ )* "]" )? ";"`
}

// widePattern is `loop|step prev dirs curr dirs next`.
type widePattern struct {
	Kind     string       `@( "loop" | "step" )`
	Prev     *charsetNode `@@`
	PrevDirs *dirsNode    `@@`
	Curr     *charsetNode `@@`
	CurrDirs *dirsNode    `@@`
	Next     *charsetNode `@@`
}

// narrowPattern is `start curr dirs next` or `end prev dirs curr`.
type narrowPattern struct {
	Kind   string       `@( "start" | "end" )`
	First  *charsetNode `@@`
	Dirs   *dirsNode    `@@`
	Second *charsetNode `@@`
}

type charsetNode struct {
	Pos lexer.Position

	Char *string `  @Char`
	Str  *string `| @String`
	Any  bool    `| @"ANY"`
}

type dirsNode struct {
	Pos lexer.Position

	Any    bool     `  @"ANY"`
	List   []string `| "(" @Ident ( "," @Ident )* ")"`
	Single string   `| @Ident`
}

type attrPair struct {
	Name  string `"(" @String ","`
	Value string `@String ")"`
}

// ParseError locates a malformed rule document.
type ParseError struct {
	// Offset is the byte offset into the document.
	Offset int
	Line   int
	Column int
	// Token is the source text at Offset, or "<EOF>".
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s (near %q)", e.Line, e.Column, e.Msg, e.Token)
}

// ParseRules parses a rule document into its rules in declaration order.
// Either every statement parses or no rule is returned.
func ParseRules(text string) ([]Rule, error) {
	file, err := ruleParser.ParseString("", text)
	if err != nil {
		return nil, newParseError(text, err)
	}
	rules := make([]Rule, 0, len(file.Rules))
	for _, stmt := range file.Rules {
		r, err := stmt.rule(text)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// MustParseRules is like ParseRules but panics on error.
func MustParseRules(text string) []Rule {
	rules, err := ParseRules(text)
	if err != nil {
		panic(err)
	}
	return rules
}

func newParseError(text string, err error) *ParseError {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &ParseError{Line: 1, Column: 1, Token: tokenAt(text, 0), Msg: err.Error()}
	}
	return errorAt(text, perr.Position(), perr.Message())
}

func errorAt(text string, pos lexer.Position, msg string) *ParseError {
	return &ParseError{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
		Token:  tokenAt(text, pos.Offset),
		Msg:    msg,
	}
}

// tokenAt returns the whitespace-delimited run of text starting at offset.
func tokenAt(text string, offset int) string {
	if offset >= len(text) {
		return "<EOF>"
	}
	rest := text[offset:]
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > 24 {
		rest = rest[:24]
		for !utf8.ValidString(rest) {
			rest = rest[:len(rest)-1]
		}
	}
	return rest
}

func (s *ruleStmt) rule(text string) (Rule, error) {
	r := Rule{Rendering: Rendering{Draw: unquote(s.Draw)}}
	if len(s.Attrs) != 0 {
		r.Rendering.Attrs = make([]Attr, len(s.Attrs))
		for i, a := range s.Attrs {
			r.Rendering.Attrs[i] = Attr{Name: unquote(a.Name), Value: unquote(a.Value)}
		}
	}
	switch {
	case s.Wide != nil:
		w := s.Wide
		prevDirs, err := w.PrevDirs.dirs(text)
		if err != nil {
			return Rule{}, err
		}
		currDirs, err := w.CurrDirs.dirs(text)
		if err != nil {
			return Rule{}, err
		}
		sets, err := charSets(text, w.Prev, w.Curr, w.Next)
		if err != nil {
			return Rule{}, err
		}
		if w.Kind == "loop" {
			r.Match = LoopMatch(sets[0], prevDirs, sets[1], currDirs, sets[2])
		} else {
			r.Match = StepMatch(sets[0], prevDirs, sets[1], currDirs, sets[2])
		}
	case s.Narrow != nil:
		n := s.Narrow
		dirs, err := n.Dirs.dirs(text)
		if err != nil {
			return Rule{}, err
		}
		sets, err := charSets(text, n.First, n.Second)
		if err != nil {
			return Rule{}, err
		}
		if n.Kind == "start" {
			r.Match = StartMatch(sets[0], dirs, sets[1])
		} else {
			r.Match = EndMatch(sets[0], dirs, sets[1])
		}
	default:
		return Rule{}, errorAt(text, s.Pos, "rule has no pattern")
	}
	return r, nil
}

func charSets(text string, nodes ...*charsetNode) ([]CharSet, error) {
	out := make([]CharSet, len(nodes))
	for i, n := range nodes {
		cs, err := n.charSet(text)
		if err != nil {
			return nil, err
		}
		out[i] = cs
	}
	return out, nil
}

func (c *charsetNode) charSet(text string) (CharSet, error) {
	switch {
	case c.Char != nil:
		r, _ := utf8.DecodeRuneInString(unquote(*c.Char))
		return CharOf(r), nil
	case c.Str != nil:
		set := unquote(*c.Str)
		if set == "" {
			return CharSet{}, errorAt(text, c.Pos, "empty character set")
		}
		return StringOf(set), nil
	default:
		return AnyChar(), nil
	}
}

func (d *dirsNode) dirs(text string) (Dirs, error) {
	if d.Any {
		out := make(Dirs, len(AllDirs))
		copy(out, AllDirs)
		return out, nil
	}
	names := d.List
	if names == nil {
		names = []string{d.Single}
	}
	out := make(Dirs, 0, len(names))
	for _, n := range names {
		dir, ok := ParseDir(n)
		if !ok {
			e := errorAt(text, d.Pos, fmt.Sprintf("unknown direction %q", n))
			e.Token = n
			return nil, e
		}
		out = append(out, dir)
	}
	return out, nil
}

// unquote strips the delimiting quotes of a String or Char token.
func unquote(s string) string {
	return s[1 : len(s)-1]
}
