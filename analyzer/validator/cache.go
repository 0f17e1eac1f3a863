package validator

import "sync"

// placeholderCache memoises placeholder extraction per template text.
// A Checker is shared by every worker of a run and the same templates recur
// across files, so each text is scanned once.
type placeholderCache struct {
	mu    sync.RWMutex              // Protects concurrent map access
	cache map[string]PlaceholderSet // Keyed by raw template text
}

// newPlaceholderCache initializes a placeholderCache with a reasonable default capacity.
func newPlaceholderCache() *placeholderCache {
	return &placeholderCache{
		cache: make(map[string]PlaceholderSet, 256),
	}
}

// get retrieves a cached set with a read lock.
func (pc *placeholderCache) get(text string) (PlaceholderSet, bool) {
	pc.mu.RLock()
	v, ok := pc.cache[text]
	pc.mu.RUnlock()
	return v, ok
}

// set stores a set with a write lock.
func (pc *placeholderCache) set(text string, v PlaceholderSet) {
	pc.mu.Lock()
	pc.cache[text] = v
	pc.mu.Unlock()
}

// extract returns the cached set for text, scanning it on a miss. Cached
// sets are never mutated, so sharing them between goroutines is safe.
func (pc *placeholderCache) extract(text string) PlaceholderSet {
	if v, ok := pc.get(text); ok {
		return v
	}
	v := ExtractPlaceholders(text)
	pc.set(text, v)
	return v
}

// CachedPrimitives returns DefaultPrimitives with an extractor that
// memoises its results. Each call gets its own cache.
func CachedPrimitives() Primitives {
	prims := DefaultPrimitives
	prims.Extract = newPlaceholderCache().extract
	return prims
}
