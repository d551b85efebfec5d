/*
Package uires tags typecases as UI-owned resources.

A UI theme installs default fonts on components. When the theme changes,
only fonts the theme itself installed may be replaced; fonts set
explicitly by the application must survive. The distinction is carried
by the resource type: a typecase wrapped as a Resource is replaceable,
a bare application font is not.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uires

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typecase/core/font"
)

// tracer writes to trace with key 'typecase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typecase.fonts")
}

// Font is any font resource a component can carry.
type Font interface {
	Typecase() *font.TypeCase
}

// Resource is a typecase owned by the UI theme. Components carrying a
// Resource accept replacement fonts from the theme.
type Resource struct {
	typecase *font.TypeCase
}

// Typecase returns the wrapped typecase.
func (r *Resource) Typecase() *font.TypeCase {
	return r.typecase
}

// AppFont is a font set explicitly by the application. It shields the
// component from theme font replacement.
type AppFont struct {
	typecase *font.TypeCase
}

// Typecase returns the wrapped typecase.
func (f *AppFont) Typecase() *font.TypeCase {
	return f.typecase
}

// NewAppFont wraps a typecase as an application-owned font.
func NewAppFont(tc *font.TypeCase) *AppFont {
	return &AppFont{typecase: tc}
}

// Wrap returns f unchanged if it already is a UI-owned resource,
// otherwise it wraps f's typecase into one. Wrap of nil is nil.
func Wrap(f Font) Font {
	if f == nil {
		return nil
	}
	if r, ok := f.(*Resource); ok {
		return r
	}
	return &Resource{typecase: f.Typecase()}
}

// WrapTypecase wraps a bare typecase as a UI-owned resource.
// WrapTypecase of nil is nil.
func WrapTypecase(tc *font.TypeCase) Font {
	if tc == nil {
		return nil
	}
	return &Resource{typecase: tc}
}

// Component is the part of a UI widget the font machinery talks to.
type Component interface {
	Font() Font
	SetFont(Font)
}

// ReplaceFont installs f on a component, but only if the component's
// current font is unset or itself UI-owned. Application fonts are left
// alone.
func ReplaceFont(c Component, f Font) {
	old := c.Font()
	if old == nil {
		c.SetFont(f)
		return
	}
	if _, owned := old.(*Resource); owned {
		c.SetFont(f)
		return
	}
	tracer().Debugf("component font is application-owned, not replaced")
}
