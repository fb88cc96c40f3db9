// cache.go
// Cross-word validity cache, grounded on dawg.go's crossCache: an
// LRU of recently validated candidate strings, generalized from a
// pattern-keyed allowed-letter set to a single cached boolean per
// fully substituted candidate word (a simpler, if less compact,
// consequence of validating one tile at a time against a GADDAG
// instead of computing a whole cross-set up front).

package wordplay

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

const defaultCrossWordCacheSize = 4096

type crossWordCache struct {
	mu  sync.Mutex
	lru *simplelru.LRU
}

func newCrossWordCache(size int) *crossWordCache {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		// Only returns an error for a non-positive size, which never
		// happens with the constant above.
		panic(err)
	}
	return &crossWordCache{lru: lru}
}

// lookup returns the cached verdict for key, computing and storing it
// via fetch on a miss.
func (c *crossWordCache) lookup(key string, fetch func() bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.lru.Get(key); ok {
		return v.(bool)
	}
	v := fetch()
	c.lru.Add(key, v)
	return v
}
