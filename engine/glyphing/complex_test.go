package glyphing

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typecase/core"
	"github.com/stretchr/testify/assert"
)

func TestComplexCodePointBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	cases := []struct {
		code    rune
		complex bool
	}{
		{0x0041, false},   // 'A'
		{0x00E9, false},   // é, precomposed
		{0x02FF, false},   // below MinLayoutCharCode
		{0x0300, true},    // first combining diacritical
		{0x036F, true},    // last combining diacritical
		{0x0370, false},   // Greek
		{0x0451, false},   // Cyrillic
		{0x058F, false},   // Armenian currency sign
		{0x0590, true},    // Hebrew block start
		{0x05D0, true},    // alef
		{0x0627, true},    // Arabic alef
		{0x06FF, true},    // Arabic block end
		{0x0700, false},   // Syriac
		{0x08FF, false},   // Thaana neighborhood end
		{0x0900, true},    // Devanagari
		{0x0B95, true},    // Tamil ka
		{0x0E01, true},    // Thai ko kai
		{0x0E7F, true},    // Thai block end
		{0x0E80, false},   // Lao
		{0x177F, false},
		{0x1780, true},    // Khmer
		{0x17FF, true},
		{0x1800, false},   // Mongolian
		{0x200B, false},   // zero-width space
		{0x200C, true},    // ZWNJ
		{0x200D, true},    // ZWJ
		{0x200E, false},   // LRM
		{0x2029, false},   // paragraph separator
		{0x202A, true},    // LRE
		{0x202E, true},    // RLO
		{0x202F, false},   // narrow no-break space
		{0x2069, false},   // PDI
		{0x206A, true},    // inhibit symmetric swapping
		{0x206F, true},    // nominal digit shapes
		{0x2070, false},   // above MaxLayoutCharCode
		{0x4E2D, false},   // CJK
		{0x10FFFF, false}, // supplementary plane code point
	}
	for _, c := range cases {
		assert.Equal(t, c.complex, IsComplexCodePoint(c.code),
			"code point U+%04X", c.code)
	}
}

func TestComplexChainMatchesBandTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	bands := LayoutBands()
	// bands must tile [MinLayoutCharCode, MaxLayoutCharCode] without gaps
	assert.EqualValues(t, MinLayoutCharCode, bands[0].Lo)
	assert.EqualValues(t, MaxLayoutCharCode, bands[len(bands)-1].Hi)
	for i := 1; i < len(bands); i++ {
		assert.Equal(t, bands[i-1].Hi+1, bands[i].Lo, "gap before band %d", i)
	}
	for _, band := range bands {
		for code := band.Lo; code <= band.Hi; code++ {
			if IsComplexCodePoint(code) != band.Complex {
				t.Fatalf("U+%04X: chain disagrees with band table", code)
			}
		}
	}
}

func TestSurrogatesAreComplex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	for u := uint16(0xD800); ; u++ {
		assert.True(t, IsComplexCodeUnit(u), "surrogate 0x%04X", u)
		if u == 0xDFFF {
			break
		}
	}
	assert.False(t, IsComplexCodeUnit('z'))
	assert.True(t, IsComplexCodeUnit(0x05D0))
}

func TestComplexRunSimpleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("hello")
	complex, err := IsComplexRun(units, 0, 5)
	assert.NoError(t, err)
	assert.False(t, complex)
}

func TestComplexRunCombiningMark(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("áb") // combining acute accent at index 1
	assert.Equal(t, 3, len(units))
	complex, err := IsComplexRun(units, 0, 3)
	assert.NoError(t, err)
	assert.True(t, complex)
}

func TestComplexRunHebrew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("שלום")
	assert.Equal(t, 4, len(units))
	complex, err := IsComplexRun(units, 0, 4)
	assert.NoError(t, err)
	assert.True(t, complex)
}

func TestComplexRunEmptyRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("שלום")
	for start := 0; start <= len(units); start++ {
		complex, err := IsComplexRun(units, start, start)
		assert.NoError(t, err)
		assert.False(t, complex)
	}
	complex, err := IsComplexRun(nil, 0, 0)
	assert.NoError(t, err)
	assert.False(t, complex)
}

func TestComplexRunSubRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("ab́cd")
	complex, err := IsComplexRun(units, 3, 5) // "cd", past the accent
	assert.NoError(t, err)
	assert.False(t, complex)
	complex, err = IsComplexRun(units, 1, 3)
	assert.NoError(t, err)
	assert.True(t, complex)
}

func TestComplexRunBoundsViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("hello")
	for _, c := range []struct{ start, limit int }{
		{-1, 3},
		{0, 6},
		{4, 2},
		{-2, -1},
	} {
		_, err := IsComplexRun(units, c.start, c.limit)
		if assert.Error(t, err, "indices [%d,%d)", c.start, c.limit) {
			assert.Equal(t, core.EINVALID, core.Code(err))
		}
	}
}

func TestComplexRunDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	units := EncodeRun("mixed text with שלום inside")
	first, err := IsComplexRun(units, 0, len(units))
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := IsComplexRun(units, 0, len(units))
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComplexString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.glyphs")
	defer teardown()
	//
	assert.False(t, IsComplexString("hello, world"))
	assert.False(t, IsComplexString(""))
	assert.True(t, IsComplexString("áb"))
	assert.True(t, IsComplexString("שלום"))
	assert.True(t, IsComplexString("‮evil‬"))
	assert.True(t, IsComplexString("🙂"), "supplementary characters need surrogate pairs")
}
