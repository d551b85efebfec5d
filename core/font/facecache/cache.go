package facecache

import (
	"sync"
	"sync/atomic"

	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font"
)

// DeriveFunc produces a typecase from a scalable font, style flags and a
// point-size. The font system supplies it; the cache treats it as an
// opaque, possibly expensive, synchronous operation that may fail.
type DeriveFunc func(base *font.ScalableFont, style font.Style, size int) (*font.TypeCase, error)

// cacheKey identifies a derivation request. The base font enters by
// pointer, i.e. by resource identity: two fonts parsed from identical
// data are distinct keys.
type cacheKey struct {
	base  *font.ScalableFont
	style font.Style
	size  int
}

type cacheEntry struct {
	typecase *font.TypeCase
	accesses uint32 // atomic; eviction prefers low counts
}

// DefaultCapacity is the entry limit used by NewCache when the caller
// passes a capacity of zero.
const DefaultCapacity = 256

// evictionSampleSize is the number of entries inspected per eviction.
const evictionSampleSize = 8

// Cache is a bounded, concurrency-safe memoization cache for derived
// typecases. The zero value is not usable; create instances with NewCache.
//
// A cache is intended to be created once and live for the process
// lifetime, owned by whatever component routes font derivations.
type Cache struct {
	mutex     sync.RWMutex
	entries   map[cacheKey]*cacheEntry
	capacity  int
	hits      uint64 // atomic
	misses    uint64 // atomic
	evictions uint64 // atomic
}

// NewCache creates a cache holding at most capacity derived typecases.
// A capacity of zero selects DefaultCapacity; negative values panic.
func NewCache(capacity int) *Cache {
	if capacity < 0 {
		panic("facecache: negative capacity")
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[cacheKey]*cacheEntry, 64),
		capacity: capacity,
	}
}

// GetOrDerive returns the cached typecase for (base, style, size), or
// derives, stores and returns a fresh one. Errors from derive propagate
// unchanged and are never cached; a subsequent call will retry the
// derivation.
//
// On a concurrent miss for the same key both callers derive and each
// receives its own result; the last insertion wins. Entries may have
// been evicted between calls, in which case derivation simply runs
// again.
func (c *Cache) GetOrDerive(base *font.ScalableFont, style font.Style, size int,
	derive DeriveFunc) (*font.TypeCase, error) {
	//
	if base == nil {
		return nil, core.Error(core.EINVALID, "cannot derive typecase from null font")
	}
	key := cacheKey{base: base, style: style, size: size}
	c.mutex.RLock()
	e, ok := c.entries[key]
	c.mutex.RUnlock()
	if ok {
		atomic.AddUint32(&e.accesses, 1)
		atomic.AddUint64(&c.hits, 1)
		return e.typecase, nil
	}
	atomic.AddUint64(&c.misses, 1)
	if derive == nil {
		return nil, core.Error(core.EINVALID, "no derive function provided")
	}
	// derive outside of the lock; redundant concurrent work is cheaper
	// than holding all lookups hostage to a slow derivation
	tracer().Debugf("face cache miss for %s/%s/%dpt", base.Fontname, style, size)
	typecase, err := derive(base, style, size)
	if err != nil {
		return nil, err
	}
	c.insert(key, typecase)
	return typecase, nil
}

func (c *Cache) insert(key cacheKey, typecase *font.TypeCase) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, present := c.entries[key]; !present && len(c.entries) >= c.capacity {
		c.evict()
	}
	c.entries[key] = &cacheEntry{typecase: typecase, accesses: 1}
}

// evict removes the least-accessed entry from a small sample.
// Map iteration order supplies the randomness. Callers must hold the
// write lock.
func (c *Cache) evict() {
	var victim cacheKey
	lowest := ^uint32(0)
	sampled := 0
	for key, entry := range c.entries {
		if n := atomic.LoadUint32(&entry.accesses); n < lowest {
			lowest = n
			victim = key
		}
		sampled++
		if sampled >= evictionSampleSize {
			break
		}
	}
	if sampled > 0 {
		delete(c.entries, victim)
		atomic.AddUint64(&c.evictions, 1)
		tracer().Debugf("face cache evicts %s/%s/%dpt",
			victim.base.Fontname, victim.style, victim.size)
	}
}

// Clear removes all entries. Subsequent lookups will re-derive; no
// correctness impact, only performance.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[cacheKey]*cacheEntry, 64)
	tracer().Infof("face cache cleared")
}

// Len returns the current number of cached typecases.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns a snapshot of the cache counters. Counters are
// monotonically increasing over the cache's lifetime; Clear does not
// reset them.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      atomic.LoadUint64(&c.hits),
		Misses:    atomic.LoadUint64(&c.misses),
		Evictions: atomic.LoadUint64(&c.evictions),
	}
}
