package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/cache"
)

func TestLRUCache(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](2)
		var evicted []string
		c.SetEvictCallback(func(k string, _ int) { evicted = append(evicted, k) })

		c.Put("a", 1)
		c.Put("b", 2)
		_, ok := c.Get("a")
		require.True(t, ok)
		c.Put("c", 3)

		assert.Equal(t, []string{"b"}, evicted)
		_, ok = c.Get("b")
		assert.False(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("replace returns old value without evicting", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[string, int](2)
		calls := 0
		c.SetEvictCallback(func(string, int) { calls++ })

		_, existed := c.Put("a", 1)
		assert.False(t, existed)
		old, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, old)
		assert.Zero(t, calls)

		v, _ := c.Get("a")
		assert.Equal(t, 2, v)
	})

	t.Run("remove and clear run callback", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[int, string](4)
		var evicted []int
		c.SetEvictCallback(func(k int, _ string) { evicted = append(evicted, k) })

		c.Put(1, "one")
		c.Put(2, "two")
		c.Put(3, "three")

		v, ok := c.Remove(2)
		assert.True(t, ok)
		assert.Equal(t, "two", v)
		_, ok = c.Remove(2)
		assert.False(t, ok)

		c.Clear()
		assert.Equal(t, []int{2, 1, 3}, evicted)
		assert.Zero(t, c.Len())
	})

	t.Run("callback may re-enter the cache", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[int, int](1)
		lens := []int{}
		c.SetEvictCallback(func(int, int) { lens = append(lens, c.Len()) })

		c.Put(1, 1)
		c.Put(2, 2)
		assert.Equal(t, []int{1}, lens)
	})

	t.Run("invalid capacity panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { cache.NewLRUCache[int, int](0) })
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRUCache[int, int](16)
		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := range 100 {
					c.Put(i*100+j, j)
					c.Get(j)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 16, c.Len())
	})
}
