package fontregistry

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font"
	"github.com/npillmayer/typecase/core/font/facecache"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	if !Matches("fonts/Clarendon-bold.ttf",
		"clarendon", xfont.StyleNormal, xfont.WeightBold) {
		t.Errorf("expected match for Clarendon, haven't")
	}
	if !Matches("Microsoft/Gill Sans MT Bold Italic.ttf",
		"gill sans", xfont.StyleItalic, xfont.WeightBold) {
		t.Errorf("expected match for Gill, haven't")
	}
	if !Matches("Cambria Math.ttf",
		"cambria", xfont.StyleNormal, xfont.WeightNormal) {
		t.Errorf("expected match for Cambria Math, haven't")
	}
}

func TestRegistryServesTypecasesFromCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	registry := NewRegistry(facecache.NewCache(0))
	registry.StoreFont("gosans", font.FallbackFont())
	first, err := registry.TypeCase("gosans", font.StylePlain, 12)
	if err != nil {
		t.Fatal(err)
	}
	second, err := registry.TypeCase("gosans", font.StylePlain, 12)
	assert.NoError(t, err)
	assert.Same(t, first, second, "repeated request must be served from cache")
	stats := registry.Faces().Stats()
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)
}

func TestRegistryDoesNotOverrideFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	registry := NewRegistry(nil)
	f := font.FallbackFont()
	registry.StoreFont("somefont", f)
	registry.StoreFont("somefont", &font.ScalableFont{Fontname: "impostor"})
	stored, ok := registry.Font("somefont")
	assert.True(t, ok)
	assert.Same(t, f, stored)
}

func TestRegistryFallsBackOnMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	registry := NewRegistry(nil)
	tc, err := registry.TypeCase("no-such-font", font.StylePlain, 11)
	assert.Equal(t, core.EMISSING, core.Code(err))
	if tc == nil {
		t.Fatal("expected a fallback typecase despite the error")
	}
	assert.Same(t, font.FallbackFont(), tc.ScalableFontParent())
	assert.Equal(t, 11, tc.PtSize())
}
