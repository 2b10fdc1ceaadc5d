package slots

import (
	"context"
	"time"

	"github.com/msto63/mdwtime/foundation/utils/timex"
	"github.com/msto63/mdwtime/pkg/core/cache"
)

var _ Store = (*CachedStore)(nil)

// CachedStore wraps a Store and caches ActiveAt results keyed by the
// millisecond of the day. Writes through the decorator clear the cache.
type CachedStore struct {
	Store
	active *cache.Cache[int64, []*Slot]
}

// NewCachedStore wraps store. A non-positive ttl uses the cache default.
func NewCachedStore(store Store, ttl time.Duration) *CachedStore {
	cfg := cache.DefaultConfig()
	cfg.MaxItems = timex.MillisPerDay / timex.MillisPerSecond
	if ttl > 0 {
		cfg.TTL = ttl
	}
	return &CachedStore{
		Store:  store,
		active: cache.New[int64, []*Slot](cfg),
	}
}

// Create stores a new slot and invalidates cached lookups
func (c *CachedStore) Create(ctx context.Context, def Definition) (*Slot, error) {
	slot, err := c.Store.Create(ctx, def)
	if err == nil {
		c.active.Clear()
	}
	return slot, err
}

// Delete removes a slot and invalidates cached lookups
func (c *CachedStore) Delete(ctx context.Context, id string) error {
	err := c.Store.Delete(ctx, id)
	if err == nil {
		c.active.Clear()
	}
	return err
}

// ActiveAt returns the slots containing t, served from the cache while the
// entry is fresh. Callers get their own copies of the cached slots.
func (c *CachedStore) ActiveAt(ctx context.Context, t timex.TimeOfDay) ([]*Slot, error) {
	cached, err := c.active.GetOrSet(t.MillisOfDay(), func() ([]*Slot, error) {
		return c.Store.ActiveAt(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return copySlots(cached), nil
}

func copySlots(src []*Slot) []*Slot {
	if src == nil {
		return nil
	}
	dst := make([]*Slot, len(src))
	for i, s := range src {
		cp := *s
		dst[i] = &cp
	}
	return dst
}

// Stats returns the hit and miss counts of the lookup cache
func (c *CachedStore) Stats() (hits, misses int64) {
	hits, misses, _ = c.active.Stats()
	return hits, misses
}

// Close stops the cache and closes the wrapped store
func (c *CachedStore) Close() error {
	c.active.Close()
	return c.Store.Close()
}
