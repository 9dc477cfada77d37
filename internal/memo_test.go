package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheLookupStore(t *testing.T) {
	var c Cache

	_, ok := c.Lookup(Key(3, "abc"))
	assert.False(t, ok)

	c.Store(Key(3, "abc"), true)
	v, ok := c.Lookup(Key(3, "abc"))
	assert.True(t, ok)
	assert.True(t, v)

	// Same set at a different budget is a different sub-problem.
	_, ok = c.Lookup(Key(2, "abc"))
	assert.False(t, ok)

	c.Store(Key(2, "abc"), false)
	v, ok = c.Lookup(Key(2, "abc"))
	assert.True(t, ok)
	assert.False(t, v)

	assert.Equal(t, 2, c.Len())
}

func TestCacheConcurrentWriters(t *testing.T) {
	// Racing writers on one key are fine: the value is a pure function of
	// the key, so whichever write lands last stores the same answer.
	var c Cache
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := Key(i%5, "set")
				c.Store(key, i%5 > 2)
				if v, ok := c.Lookup(key); ok {
					assert.Equal(t, i%5 > 2, v)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 5, c.Len())
}
