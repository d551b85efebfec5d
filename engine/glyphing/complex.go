package glyphing

import (
	"unicode/utf16"

	"github.com/npillmayer/typecase/core"
)

// Code-point bounds for the complex-script test.
//
// MinLayoutCharCode is the lowest char code for which failing to invoke
// a layout pass would prevent acceptable rendering. Note that even basic
// latin text can benefit from ligatures, e.g. "ffi", but those are only
// applied when explicitly requested.
//
// MaxLayoutCharCode is the highest char code for which a layout pass may
// be required. This does not account for supplementary characters, where
// a caller may interpret 'layout' to mean any case in which one code
// unit does not map to one glyph.
const (
	MinLayoutCharCode = 0x0300
	MaxLayoutCharCode = 0x206F
)

// UTF-16 surrogate code unit range.
const (
	hiSurrogateStart = 0xD800
	loSurrogateEnd   = 0xDFFF
)

// IsComplexCodePoint checks whether a code point falls into one of a
// number of Unicode ranges where simple left-to-right layout, mapping
// chars to glyphs 1:1 and accumulating advances, produces incorrect
// results.
//
// The first test rejects everything outside the layout-sensitive range;
// callers caring about optimum performance check that range themselves
// and skip the call. The remaining range tests are ordered ascending, so
// the function returns as soon as the code point is recognized to lie
// below the next complex band, rather than testing every band fully.
//
// IsComplexCodePoint takes a full code point; it assumes the caller has
// already combined surrogate pairs into supplementary characters and can
// therefore handle that case without being told it is complex. For raw
// code units use IsComplexCodeUnit.
func IsComplexCodePoint(code rune) bool {
	if code < MinLayoutCharCode || code > MaxLayoutCharCode {
		return false
	} else if code <= 0x036F {
		// combining diacriticals 0300–036F
		return true
	} else if code < 0x0590 {
		// no automatic layout for Greek, Cyrillic, Armenian
		return false
	} else if code <= 0x06FF {
		// Hebrew 0590–05FF
		// Arabic 0600–06FF
		return true
	} else if code < 0x0900 {
		return false // Syriac and Thaana
	} else if code <= 0x0E7F {
		// if Indic, assume shaping for conjuncts, reordering:
		// 0900–097F Devanagari
		// 0980–09FF Bengali
		// 0A00–0A7F Gurmukhi
		// 0A80–0AFF Gujarati
		// 0B00–0B7F Oriya
		// 0B80–0BFF Tamil
		// 0C00–0C7F Telugu
		// 0C80–0CFF Kannada
		// 0D00–0D7F Malayalam
		// 0D80–0DFF Sinhala
		// 0E00–0E7F if Thai, assume shaping for vowel, tone marks
		return true
	} else if code < 0x1780 {
		return false
	} else if code <= 0x17FF {
		// 1780–17FF Khmer
		return true
	} else if code < 0x200C {
		return false
	} else if code <= 0x200D {
		// zero-width joiner / non-joiner
		return true
	} else if code >= 0x202A && code <= 0x202E {
		// directional control
		return true
	} else if code >= 0x206A {
		// directional control
		return true
	}
	return false
}

// IsComplexCodeUnit checks a single UTF-16 code unit, which may be half
// of an undecoded surrogate pair. Surrogates always count as complex:
// a lone code unit cannot be interpreted as a standalone glyph, and
// callers of this flavor are really asking whether they may make naive
// 1:1 assumptions when indexing through a buffer. No pairing validation
// is attempted; combining pairs into supplementary code points is a
// caller concern.
func IsComplexCodeUnit(u uint16) bool {
	return IsComplexCodePoint(rune(u)) || u >= hiSurrogateStart && u <= loSurrogateEnd
}

// IsComplexRun checks whether a layout pass is required to render the
// UTF-16 code units at index [start, limit). It returns true as soon as
// a complex code unit is found and false if there is none.
//
// The index range must satisfy 0 ≤ start ≤ limit ≤ len(units); a
// violated constraint is a caller error, reported with code
// core.EINVALID, never silently clamped.
func IsComplexRun(units []uint16, start, limit int) (bool, error) {
	if start < 0 || start > limit || limit > len(units) {
		return false, core.Error(core.EINVALID,
			"run indices [%d,%d) out of bounds for %d code units", start, limit, len(units))
	}
	for i := start; i < limit; i++ {
		if units[i] >= MinLayoutCharCode && IsComplexCodeUnit(units[i]) {
			return true, nil
		}
	}
	return false, nil
}

// IsComplexString checks whether a layout pass is required to render s.
func IsComplexString(s string) bool {
	for _, r := range s {
		if r >= MinLayoutCharCode && (IsComplexCodePoint(r) || r > 0xFFFF) {
			return true
		}
	}
	return false
}

// EncodeRun converts a string into the UTF-16 code unit buffer the
// run-level checks operate on.
func EncodeRun(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// LayoutBand is one row of the classification table: an inclusive
// code-point range and whether it triggers a layout pass.
type LayoutBand struct {
	Lo, Hi  rune
	Complex bool
}

// layoutBands mirrors the decision chain of IsComplexCodePoint as
// constant data, covering [MinLayoutCharCode, MaxLayoutCharCode].
// IsComplexCodePoint stays the authoritative implementation; the table
// exists for tooling and for cross-checking the chain in tests.
var layoutBands = []LayoutBand{
	{0x0300, 0x036F, true},  // combining diacriticals
	{0x0370, 0x058F, false}, // Greek, Cyrillic, Armenian
	{0x0590, 0x06FF, true},  // Hebrew, Arabic
	{0x0700, 0x08FF, false}, // Syriac, Thaana
	{0x0900, 0x0E7F, true},  // Indic scripts, Thai
	{0x0E80, 0x177F, false},
	{0x1780, 0x17FF, true}, // Khmer
	{0x1800, 0x200B, false},
	{0x200C, 0x200D, true}, // ZWNJ, ZWJ
	{0x200E, 0x2029, false},
	{0x202A, 0x202E, true}, // directional control
	{0x202F, 0x2069, false},
	{0x206A, 0x206F, true}, // directional control
}

// LayoutBands returns a copy of the classification table.
func LayoutBands() []LayoutBand {
	bands := make([]LayoutBand, len(layoutBands))
	copy(bands, layoutBands)
	return bands
}
