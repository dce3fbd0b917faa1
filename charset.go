// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"fmt"
	"strings"
)

// CharSetKind tags the shape of a CharSet.
type CharSetKind int

const (
	// CharExact matches exactly one character.
	CharExact CharSetKind = iota
	// CharAnyOf matches any character of a string.
	CharAnyOf
	// CharAny matches any character present in the grid.
	CharAny
)

// A CharSet is a predicate over the character at one grid position.
type CharSet struct {
	Kind CharSetKind
	// Char is set for CharExact.
	Char rune
	// Set is set for CharAnyOf. Order and repetition are irrelevant.
	Set string
}

// CharOf returns a CharSet matching only r.
func CharOf(r rune) CharSet {
	return CharSet{Kind: CharExact, Char: r}
}

// StringOf returns a CharSet matching any rune of s.
func StringOf(s string) CharSet {
	return CharSet{Kind: CharAnyOf, Set: s}
}

// AnyChar returns the wildcard CharSet.
func AnyChar() CharSet {
	return CharSet{Kind: CharAny}
}

// Matches reports whether r satisfies the set. present is false when there
// is no cell at the tested position, in which case nothing matches.
func (cs CharSet) Matches(r rune, present bool) bool {
	if !present {
		return false
	}
	switch cs.Kind {
	case CharExact:
		return r == cs.Char
	case CharAnyOf:
		return strings.ContainsRune(cs.Set, r)
	case CharAny:
		return true
	default:
		panic(fmt.Errorf("internal error; unknown CharSetKind %d", cs.Kind))
	}
}

// String implements fmt.Stringer on CharSet using the grammar's syntax.
func (cs CharSet) String() string {
	switch cs.Kind {
	case CharExact:
		return "'" + string(cs.Char) + "'"
	case CharAnyOf:
		return `"` + cs.Set + `"`
	case CharAny:
		return "ANY"
	default:
		return fmt.Sprintf("CharSet(%d)", cs.Kind)
	}
}
