package internal

import "sync"

// Cache memoizes sub-problem viability for the exhaustive prover, keyed by
// (budget, canonical candidate set). Set equality, not guess history, is what
// identifies a sub-problem, so identical frames reached along different paths
// hit the same entry.
//
// Concurrent workers share one cache. A race where two workers compute the
// same key is harmless: the value is a pure function of the key, so
// last-write-wins stores the same bool either way.
type Cache struct {
	entries sync.Map // string -> bool
}

// Key builds a cache key from a remaining budget and a canonical set key.
func Key(budget int, setKey string) string {
	return string(rune(budget)) + setKey
}

// Lookup returns the cached viability for key, if present.
func (c *Cache) Lookup(key string) (viable bool, ok bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// Store records the viability for key.
func (c *Cache) Store(key string, viable bool) {
	c.entries.Store(key, viable)
}

// Len counts the cached entries. Used for progress reporting only.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
