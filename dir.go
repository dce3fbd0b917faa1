// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import "fmt"

// A Dir is one of the eight compass points around a cell.
type Dir int

const (
	N Dir = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// AllDirs lists every Dir clockwise from north. The grammar keyword ANY in a
// direction position expands to this order.
var AllDirs = Dirs{N, NE, E, SE, S, SW, W, NW}

var dirNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// The grid's (0, 0) is the top left, so north is -Y.
var dirOffsets = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// ParseDir maps an uppercase direction name to its Dir.
func ParseDir(s string) (Dir, bool) {
	for i, n := range dirNames {
		if n == s {
			return Dir(i), true
		}
	}
	return 0, false
}

func (d Dir) valid() bool {
	return d >= N && d <= NW
}

// String implements fmt.Stringer on Dir.
func (d Dir) String() string {
	if !d.valid() {
		return fmt.Sprintf("Dir(%d)", int(d))
	}
	return dirNames[d]
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	return (d + 4) % 8
}

// Offset returns the grid delta of one step in direction d.
func (d Dir) Offset() (dx, dy int) {
	o := dirOffsets[d]
	return o[0], o[1]
}

// Dirs is an ordered list of directions. Membership ignores order and
// duplicates; the order only decides which candidate is tried first.
type Dirs []Dir

// Contains reports whether d is a member of ds.
func (ds Dirs) Contains(d Dir) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer on Dirs using the grammar's list syntax.
func (ds Dirs) String() string {
	out := "("
	for i, d := range ds {
		if i != 0 {
			out += ","
		}
		out += d.String()
	}
	return out + ")"
}
