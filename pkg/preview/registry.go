package preview

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/qrgen/pkg/cache"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Handle references an image held by a Registry.
type Handle string

// Registry holds preview images under opaque handles until they are released.
// Capacity bounds the number of live handles across all sessions; the least
// recently used handle is dropped when it is exceeded.
type Registry struct {
	images  *cache.LRUCache[Handle, *qrcode.Image]
	metrics *metrics.Metrics
}

func NewRegistry(capacity int, m *metrics.Metrics) *Registry {
	r := &Registry{
		images:  cache.NewLRUCache[Handle, *qrcode.Image](capacity),
		metrics: m,
	}
	r.images.SetEvictCallback(func(Handle, *qrcode.Image) {
		r.metrics.HandleReleased()
	})
	return r
}

// Add stores img and returns a new handle for it.
func (r *Registry) Add(img *qrcode.Image) Handle {
	h := Handle(uuid.NewString())
	r.images.Put(h, img)
	r.metrics.HandleAdded()
	return h
}

// Get returns the image for h if it has not been released.
func (r *Registry) Get(h Handle) (*qrcode.Image, bool) {
	if h == "" {
		return nil, false
	}
	return r.images.Get(h)
}

// Release frees h. It reports whether h was live.
func (r *Registry) Release(h Handle) bool {
	if h == "" {
		return false
	}
	_, ok := r.images.Remove(h)
	return ok
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return r.images.Len()
}
