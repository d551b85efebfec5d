/*
Package glyphing decides how runs of text have to be laid out.

The central question this package answers is: may a renderer assume that
every character maps to exactly one glyph, set left to right, advances
simply summed up? For the majority of western text the answer is yes,
and renderers take a cheap fast path. For combining marks, Hebrew,
Arabic, Indic scripts, Thai, Khmer, joiners and directional controls the
answer is no, and a complex shaping/bidi pass is required (see
IsComplexRun and friends).

Shaping itself is not implemented here. The Shaper interface is the seam
where a shaping engine (e.g. a HarfBuzz binding) plugs in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typecase.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("typecase.glyphs")
}
