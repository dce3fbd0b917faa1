// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import "unicode"

type char rune

// isGlyph is true for anything that occupies a cell; blanks are treated as
// empty positions by the rule engine.
func (c char) isGlyph() bool {
	return !c.isSpace() && unicode.IsPrint(rune(c))
}

func (c char) isTextStart() bool {
	r := rune(c)
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}

func (c char) isTextCont() bool {
	return unicode.IsPrint(rune(c))
}

func (c char) isSpace() bool {
	return unicode.IsSpace(rune(c))
}
