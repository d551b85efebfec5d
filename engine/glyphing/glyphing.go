package glyphing

import (
	"fmt"
	"io"

	"github.com/npillmayer/typecase/core/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// Direction is the direction to set text in.
type Direction int

// Direction to set text in.
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// A ShapedGlyph is the result of shaping: one glyph of a font, positioned
// relative to its predecessor.
type ShapedGlyph struct {
	ClusterID int           // position of code-point(s) for this glyph in original string
	XAdvance  fixed.Int26_6 // advance after glyph has been set
	YAdvance  fixed.Int26_6 //
	XOffset   fixed.Int26_6 // position of anchor dot for glyph
	YOffset   fixed.Int26_6 //
	GID       uint16        // glyph index within font
	CodePoint rune          // code-point of first rune to produce this glyph
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, advance=%v)", g.GID, g.XAdvance)
}

// A Shaper creates a sequence of glyphs from a sequence of Unicode
// code-points. Glyphs are taken from a font, given in a specific
// point-size.
//
// This package decides whether shaping is necessary at all; it does not
// provide a shaper implementation.
type Shaper interface {
	Shape(io.RuneReader, []ShapedGlyph, Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Font      *font.TypeCase  // use a font at a given point-size
	Direction Direction       // writing direction
	Script    language.Script // 4-letter ISO 15924 script identifier
	Language  language.Tag    // BCP 47 language tag
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph // resulting sequence of glyphs
	W, H, D fixed.Int26_6 // width, height, depth of bounding box
}

// BoundingBox returns the extent of a glyph sequence.
func (seq GlyphSequence) BoundingBox() (w fixed.Int26_6, h fixed.Int26_6, d fixed.Int26_6) {
	return seq.W, seq.H, seq.D
}
