// Package cache provides a generic LRU used for bounded in-memory state:
// preview image handles, visitor preview sessions and rendered results.
//
//	images := cache.NewLRUCache[Handle, *qrcode.Image](256)
//	images.SetEvictCallback(func(h Handle, _ *qrcode.Image) {
//	    metrics.HandleReleased()
//	})
//
// The evict callback fires whenever an entry leaves the cache, whether by
// capacity pressure, Remove or Clear. Replacing a key through Put returns the
// old value instead.
package cache
