package fontregistry

import (
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font"
	"github.com/npillmayer/typecase/core/font/facecache"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about loaded fonts for a
// rendering layer, together with a cache of derived typecases.
type Registry struct {
	sync.Mutex
	fonts map[string]*font.ScalableFont
	faces *facecache.Cache
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and derived typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(facecache.NewCache(0))
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry, serving typecases through the
// given face cache. A nil cache selects a cache of default capacity.
func NewRegistry(faces *facecache.Cache) *Registry {
	if faces == nil {
		faces = facecache.NewCache(0)
	}
	fr := &Registry{
		fonts: make(map[string]*font.ScalableFont),
		faces: faces,
	}
	return fr
}

// Faces returns the registry's derived-font cache. Administrative hooks
// may clear it at any time without affecting correctness.
func (fr *Registry) Faces() *facecache.Cache {
	return fr.faces
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns the scalable font stored under a normalized name, if any.
func (fr *Registry) Font(normalizedName string) (*font.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[normalizedName]
	return f, ok
}

// TypeCase returns a typecase with a given font, style flags and size.
// Derivations run through the registry's face cache, so repeated requests
// for the same variant are served from memory.
//
// If no font is stored under `normalizedName`, TypeCase derives a
// typecase from a system-wide fallback font and returns it, together
// with an error carrying code core.EMISSING.
func (fr *Registry) TypeCase(normalizedName string, style font.Style, size int) (*font.TypeCase, error) {
	//
	tracer().Debugf("registry searches for font %s/%s at %d", normalizedName, style, size)
	fr.Lock()
	f, ok := fr.fonts[normalizedName]
	fr.Unlock()
	if ok {
		return fr.faces.GetOrDerive(f, style, size, deriveCase)
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	fr.Lock()
	fallback, ok := fr.fonts["fallback"]
	if !ok {
		fallback = font.FallbackFont()
		fr.fonts["fallback"] = fallback
		tracer().Infof("font registry registers fallback font %s", fallback.Fontname)
	}
	fr.Unlock()
	t, derr := fr.faces.GetOrDerive(fallback, style, size, deriveCase)
	if derr != nil {
		return t, derr
	}
	return t, err
}

func deriveCase(base *font.ScalableFont, style font.Style, size int) (*font.TypeCase, error) {
	return base.PrepareCase(style, size)
}

// LogFontList is a helper function to dump the list of known fonts in a
// registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	fr.Lock()
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	fr.Unlock()
	stats := fr.faces.Stats()
	tracer().Infof("typecases cached = %d (%d hits, %d misses)",
		fr.faces.Len(), stats.Hits, stats.Misses)
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight.
func Matches(fontfilename, pattern string, style xfont.Style, weight xfont.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	tracer().Debugf("basename of font = %s", basename)
	if !strings.Contains(basename, strings.ToLower(pattern)) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	if s == style && w == weight {
		return true
	}
	return false
}
