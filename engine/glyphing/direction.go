package glyphing

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/bidi"
)

// RunDirection guesses the writing direction of a run of text from its
// first strong directional character (UAX#9 rule P2). Runs without any
// strong character default to left-to-right.
//
// A renderer may only take the naive fast path if a run is simple
// (IsComplexString is false) AND left-to-right.
func RunDirection(s string) Direction {
	for i := 0; i < len(s); {
		props, sz := bidi.LookupString(s[i:])
		if sz == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
		i += sz
	}
	tracer().Debugf("run has no strong direction, assuming left-to-right")
	return LeftToRight
}

var setupGraphemes sync.Once

// GraphemeCount returns the number of user-perceived characters in s.
// Callers which cannot assume a 1:1 char-to-glyph mapping—caret
// movement, selection, measuring—should step through grapheme clusters
// instead of code units.
func GraphemeCount(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(s).Len()
}
