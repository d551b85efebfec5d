/*
Package fontregistry manages a registry for loaded fonts.

A registry maps normalized font names to scalable font resources and
serves typecases—fonts at a concrete style and size—through a derived-
font cache. The cache is an explicit dependency with process-lifetime
ownership, handed to the registry at creation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typecase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typecase.fonts")
}
