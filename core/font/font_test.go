package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	assert.Equal(t, "clarendon", NormalizeFontname("Clarendon.ttf"))
	assert.Equal(t, "gill_sans_mt", NormalizeFontname(" Gill Sans MT "))
	assert.Equal(t, "cambria_math", NormalizeFontname("Cambria Math.ttf"))
}

func TestStyleFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	assert.Equal(t, StylePlain, StyleFrom(xfont.StyleNormal, xfont.WeightNormal))
	assert.Equal(t, StyleBold, StyleFrom(xfont.StyleNormal, xfont.WeightBold))
	assert.Equal(t, StyleItalic, StyleFrom(xfont.StyleItalic, xfont.WeightLight))
	assert.Equal(t, StyleBold|StyleItalic, StyleFrom(xfont.StyleOblique, xfont.WeightBlack))
}

func TestFallbackFontIsAlwaysPresent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatal("expected fallback font to be loaded")
	}
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.Same(t, f, FallbackFont(), "fallback font is a singleton")
}

func TestPrepareCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	f := FallbackFont()
	tc, err := f.PrepareCase(StyleBold, 12)
	if err != nil {
		t.Fatal(err)
	}
	assert.Same(t, f, tc.ScalableFontParent())
	assert.Equal(t, StyleBold, tc.Style())
	assert.Equal(t, 12, tc.PtSize())
	if tc.Face() == nil {
		t.Fatal("expected a usable font face")
	}
	metrics := tc.Face().Metrics()
	t.Logf("interline spacing for [%s]@%dpt is %v", f.Fontname, tc.PtSize(), metrics.Height)
}

func TestPrepareCaseSizeGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(StylePlain, 900)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 10, tc.PtSize(), "out-of-range sizes fall back to 10pt")
}
