/*
Package facecache memoizes derived typecases.

Deriving a typecase (style and size applied to a scalable font) is an
expensive operation. A Cache maps derivation keys—base font identity,
style flags, point-size—to previously derived typecases, so that a UI
rendering layer asking for "this font, bold, 12pt" over and over pays
for the derivation once.

The cache is bounded: when full, it evicts the least-used entry from a
small random sample. Runtimes with reclaimable references would let the
memory manager empty such a cache under pressure; Go has no equivalent,
so the memory response here is deterministic and capacity-bounded
rather than pressure-driven. Evicted entries are recomputed
transparently on the next lookup.

A Cache is safe for concurrent use. Concurrent misses on the same key
may derive redundantly; the cache does not serialize derivations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package facecache

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typecase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typecase.fonts")
}
