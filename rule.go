// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"fmt"
	"strings"
)

// MatchKind tags which of the four pattern shapes a Match is.
type MatchKind int

const (
	// Loop passes a stroke through a cell of a closed path.
	Loop MatchKind = iota
	// Step passes a stroke through a cell of an open path.
	Step
	// Start begins a stroke; it needs a successor only.
	Start
	// End terminates a stroke; it needs a predecessor only.
	End
)

var matchKindNames = [...]string{"loop", "step", "start", "end"}

// String returns the grammar keyword for k.
func (k MatchKind) String() string {
	if k < Loop || k > End {
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
	return matchKindNames[k]
}

// A Match is the neighborhood pattern of a rule.
//
// Start uses Curr, CurrDirs and Next. End uses Prev, PrevDirs and Curr. Step
// and Loop use every field. PrevDirs name the direction of travel when
// arriving at the focal cell, so the predecessor sits at the opposite
// direction. CurrDirs name the direction of the successor.
type Match struct {
	Kind     MatchKind
	Prev     CharSet
	PrevDirs Dirs
	Curr     CharSet
	CurrDirs Dirs
	Next     CharSet
}

// StartMatch builds `start curr dirs next`.
func StartMatch(curr CharSet, dirs Dirs, next CharSet) Match {
	return Match{Kind: Start, Curr: curr, CurrDirs: dirs, Next: next}
}

// EndMatch builds `end prev dirs curr`.
func EndMatch(prev CharSet, dirs Dirs, curr CharSet) Match {
	return Match{Kind: End, Prev: prev, PrevDirs: dirs, Curr: curr}
}

// StepMatch builds `step prev prevDirs curr currDirs next`.
func StepMatch(prev CharSet, prevDirs Dirs, curr CharSet, currDirs Dirs, next CharSet) Match {
	return Match{Kind: Step, Prev: prev, PrevDirs: prevDirs, Curr: curr, CurrDirs: currDirs, Next: next}
}

// LoopMatch builds `loop prev prevDirs curr currDirs next`.
func LoopMatch(prev CharSet, prevDirs Dirs, curr CharSet, currDirs Dirs, next CharSet) Match {
	return Match{Kind: Loop, Prev: prev, PrevDirs: prevDirs, Curr: curr, CurrDirs: currDirs, Next: next}
}

// Equal reports structural equality.
func (m Match) Equal(o Match) bool {
	return m.Kind == o.Kind && m.Prev == o.Prev && m.Curr == o.Curr && m.Next == o.Next &&
		dirsEqual(m.PrevDirs, o.PrevDirs) && dirsEqual(m.CurrDirs, o.CurrDirs)
}

func (m Match) String() string {
	switch m.Kind {
	case Loop, Step:
		return fmt.Sprintf("%s %s %s %s %s %s", m.Kind, m.Prev, m.PrevDirs, m.Curr, m.CurrDirs, m.Next)
	case Start:
		return fmt.Sprintf("start %s %s %s", m.Curr, m.CurrDirs, m.Next)
	case End:
		return fmt.Sprintf("end %s %s %s", m.Prev, m.PrevDirs, m.Curr)
	default:
		panic(fmt.Errorf("internal error; unknown MatchKind %d", m.Kind))
	}
}

func dirsEqual(a, b Dirs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// An Attr is one attribute attached to the drawing primitive of a rule.
type Attr struct {
	Name  string
	Value string
}

// Rendering is a draw template plus optional attributes. Attrs is nil when
// the rule has no attrs clause.
type Rendering struct {
	Draw  string
	Attrs []Attr
}

// Equal reports structural equality.
func (r Rendering) Equal(o Rendering) bool {
	if r.Draw != o.Draw || (r.Attrs == nil) != (o.Attrs == nil) || len(r.Attrs) != len(o.Attrs) {
		return false
	}
	for i := range r.Attrs {
		if r.Attrs[i] != o.Attrs[i] {
			return false
		}
	}
	return true
}

// Attributes returns Attrs with duplicate names collapsed. The last value
// wins and keeps the position of the first occurrence.
func (r Rendering) Attributes() []Attr {
	if len(r.Attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(r.Attrs))
	index := map[string]int{}
	for _, a := range r.Attrs {
		if i, ok := index[a.Name]; ok {
			out[i].Value = a.Value
			continue
		}
		index[a.Name] = len(out)
		out = append(out, a)
	}
	return out
}

func (r Rendering) String() string {
	out := `draw "` + r.Draw + `"`
	if r.Attrs != nil {
		pairs := make([]string, len(r.Attrs))
		for i, a := range r.Attrs {
			pairs[i] = `("` + a.Name + `", "` + a.Value + `")`
		}
		out += " attrs [" + strings.Join(pairs, ", ") + "]"
	}
	return out
}

// A Rule pairs a neighborhood pattern with what to draw when it matches.
type Rule struct {
	Match     Match
	Rendering Rendering
}

// clone returns r with its own copies of every slice.
func (r Rule) clone() Rule {
	r.Match.PrevDirs = cloneDirs(r.Match.PrevDirs)
	r.Match.CurrDirs = cloneDirs(r.Match.CurrDirs)
	r.Rendering.Attrs = cloneAttrs(r.Rendering.Attrs)
	return r
}

func cloneDirs(ds Dirs) Dirs {
	if ds == nil {
		return nil
	}
	out := make(Dirs, len(ds))
	copy(out, ds)
	return out
}

// cloneAttrs keeps the nil / empty distinction of attrs.
func cloneAttrs(attrs []Attr) []Attr {
	if attrs == nil {
		return nil
	}
	out := make([]Attr, len(attrs))
	copy(out, attrs)
	return out
}

// Equal reports structural equality.
func (r Rule) Equal(o Rule) bool {
	return r.Match.Equal(o.Match) && r.Rendering.Equal(o.Rendering)
}

// String returns r as a rule statement.
func (r Rule) String() string {
	return r.Match.String() + " " + r.Rendering.String() + ";"
}
