package font

import (
	"fmt"
	"os"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Style is a bitmask of style flags applied when deriving a typecase
// from a scalable font.
type Style int

// Style flags. StylePlain is the zero value.
const (
	StylePlain  Style = 0
	StyleBold   Style = 1 << 0
	StyleItalic Style = 1 << 1
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBold | StyleItalic:
		return "bold-italic"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// StyleFrom converts style and weight designations, as used by the
// x/image font packages, into style flags.
func StyleFrom(style xfont.Style, weight xfont.Weight) Style {
	s := StylePlain
	if style == xfont.StyleItalic || style == xfont.StyleOblique {
		s |= StyleItalic
	}
	if weight >= xfont.WeightSemiBold {
		s |= StyleBold
	}
	return s
}

// ScalableFont is a font resource, i.e. a scalable font variant loaded
// from an OpenType container.
//
// Identity matters for scalable fonts: two fonts parsed from identical
// binary data are still distinct resources, and derived typecases are
// cached per resource, not per font family. Callers must therefore pass
// around *ScalableFont pointers and never copy the struct.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scaled font, i.e. a scalable font with style flags and
// a point-size applied. Typecases are the values held by the derived-font
// cache; clients keep their own reference for as long as they use one.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	style              Style
	size               int
}

// NullTypeCase returns an empty typecase at a default size.
func NullTypeCase() *TypeCase {
	return &TypeCase{
		face: nil,
		size: 10,
	}
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if f != nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont parses an OpenType font (TTF or OTF) from binary data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase derives a typecase with given style flags and point-size
// from a scalable font. This is an expensive operation.
//
// Style flags are recorded with the typecase for the renderer; synthetic
// emboldening or slanting is not applied at derivation time.
func (sf *ScalableFont) PrepareCase(style Style, size int) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if size < 5 || size > 500 {
		tracer().Errorf("font size must be 5pt ≤ size ≤ 500pt, is %d (set to 10pt)", size)
		size = 10
	}
	options := &opentype.FaceOptions{
		Size: float64(size),
		DPI:  600,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.face = f
		typecase.style = style
		typecase.size = size
	}
	return typecase, err
}

// ScalableFontParent returns the font resource this typecase has been
// derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the font face to draw glyphs with.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// Style returns the style flags of this typecase.
func (tc *TypeCase) Style() Style {
	return tc.style
}

// PtSize returns the point-size of this typecase.
func (tc *TypeCase) PtSize() int {
	return tc.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// ---------------------------------------------------------------------------

// NormalizeFontname normalizes a font name or file name for registry
// lookups: trimmed, lowercased, extension cut off, spaces replaced.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
