package history

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cachedList is one sender's newest records as last read from the backing
// store. complete is set when the store had no more records than requested.
type cachedList struct {
	records  []Record
	complete bool
}

// CachedStore keeps recent per-sender List results in an LRU cache. Saving a
// record drops the cached list of its sender.
//
// Every Save bumps a generation counter. A List result is only cached when no
// Save completed while it was being read, so a read that raced a write can
// never hide the written record.
type CachedStore struct {
	inner Store
	lists *lru.Cache[string, cachedList]

	mu  sync.Mutex
	gen uint64
}

// NewCachedStore wraps inner with a cache of up to size senders.
func NewCachedStore(inner Store, size int) (*CachedStore, error) {
	lists, err := lru.New[string, cachedList](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, lists: lists}, nil
}

// Save stores rec in the backing store and invalidates its sender's list.
// When rec replaces an existing ID, the previous sender's list is dropped too.
func (c *CachedStore) Save(ctx context.Context, rec Record) (Record, error) {
	var prevSender string
	if rec.ID != "" {
		if prev, err := c.inner.Get(ctx, rec.ID); err == nil {
			prevSender = prev.SenderWallet
		}
	}
	saved, err := c.inner.Save(ctx, rec)
	if err != nil {
		return Record{}, err
	}
	c.invalidate(saved.SenderWallet, prevSender)
	return saved, nil
}

func (c *CachedStore) invalidate(senders ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for _, s := range senders {
		if s != "" {
			c.lists.Remove(s)
		}
	}
}

// Get reads through to the backing store.
func (c *CachedStore) Get(ctx context.Context, id string) (Record, error) {
	return c.inner.Get(ctx, id)
}

// List serves from the cache when the cached list is long enough.
func (c *CachedStore) List(ctx context.Context, sender string, limit int) ([]Record, error) {
	if limit < 1 {
		limit = DefaultLimit
	}
	if cached, ok := c.lists.Get(sender); ok {
		if cached.complete || len(cached.records) >= limit {
			return copyRecords(cached.records, limit), nil
		}
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	records, err := c.inner.List(ctx, sender, limit)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gen == gen {
		c.lists.Add(sender, cachedList{
			records:  copyRecords(records, len(records)),
			complete: len(records) < limit,
		})
	}
	c.mu.Unlock()
	return records, nil
}

// Len returns the number of senders currently cached.
func (c *CachedStore) Len() int {
	return c.lists.Len()
}

func copyRecords(records []Record, limit int) []Record {
	if limit > len(records) {
		limit = len(records)
	}
	out := make([]Record, limit)
	copy(out, records[:limit])
	return out
}
