package uires

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typecase/core/font"
	"github.com/stretchr/testify/assert"
)

type fakeWidget struct {
	font Font
}

func (w *fakeWidget) Font() Font     { return w.font }
func (w *fakeWidget) SetFont(f Font) { w.font = f }

func TestWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	assert.Nil(t, Wrap(nil))
	assert.Nil(t, WrapTypecase(nil))
	//
	tc := font.NullTypeCase()
	wrapped := Wrap(NewAppFont(tc))
	resource, ok := wrapped.(*Resource)
	assert.True(t, ok, "wrapping must yield a UI-owned resource")
	assert.Same(t, tc, resource.Typecase())
	//
	assert.Same(t, wrapped, Wrap(wrapped), "already UI-owned resources pass through")
}

func TestReplaceFontOnUnsetComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	w := &fakeWidget{}
	theme := WrapTypecase(font.NullTypeCase())
	ReplaceFont(w, theme)
	assert.Same(t, theme, w.Font())
}

func TestReplaceFontOnThemedComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	w := &fakeWidget{font: WrapTypecase(font.NullTypeCase())}
	theme := WrapTypecase(font.NullTypeCase())
	ReplaceFont(w, theme)
	assert.Same(t, theme, w.Font(), "UI-owned fonts are replaceable")
}

func TestReplaceFontRespectsAppFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	appFont := NewAppFont(font.NullTypeCase())
	w := &fakeWidget{font: appFont}
	ReplaceFont(w, WrapTypecase(font.NullTypeCase()))
	assert.Same(t, Font(appFont), w.Font(), "application fonts must survive theme changes")
}
