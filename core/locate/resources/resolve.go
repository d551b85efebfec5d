package resources

import (
	"context"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/typecase/core/font"
	"github.com/npillmayer/typecase/core/font/fontregistry"
	xfont "golang.org/x/image/font"
)

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is the await-side of ResolveTypeCase.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

// ResolveTypeCase resolves a typecase with a given style, weight and size.
//
// Resolution tries, in order: the global font registry, the system's
// font directories, and—if conf is non-nil and fontconfig is
// configured—the fontconfig database. If nothing matches, a typecase
// derived from the fallback font is returned together with an error.
//
// Loaded fonts are stored in the global registry; derived typecases are
// served through the registry's face cache.
func ResolveTypeCase(conf schuko.Configuration, name string, style xfont.Style,
	weight xfont.Weight, size int) TypeCasePromise {
	//
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		registry := fontregistry.GlobalRegistry()
		flags := font.StyleFrom(style, weight)
		normalized := font.NormalizeFontname(name)
		if _, ok := registry.Font(normalized); ok {
			result.font, result.err = registry.TypeCase(normalized, flags, size)
			ch <- result
			close(ch)
			return
		}
		var f *font.ScalableFont
		fpath, err := findfont.Find(name) // try to find as system font
		if err == nil && fpath != "" {
			tracer().Debugf("%s is a system font", name)
			f, result.err = font.LoadOpenTypeFont(fpath)
		}
		if f == nil && conf != nil {
			// ask the fontconfig database, if configured
			desc, variant := findFontConfigFont(conf, name, style, weight)
			if desc.Path != "" {
				tracer().Debugf("fontconfig lists %s variant %s", desc.Family, variant)
				f, result.err = font.LoadOpenTypeFont(desc.Path)
			}
		}
		if f != nil {
			f.Fontname = name
			registry.StoreFont(normalized, f)
		}
		// a registry miss derives from the fallback font and reports EMISSING
		result.font, result.err = registry.TypeCase(normalized, flags, size)
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}
