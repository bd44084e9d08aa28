package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Kind identifies a family of cached server resources.
type Kind string

const (
	KindCategories Kind = "categories" // the category list
	KindLinks      Kind = "links"      // link lists, one entry per filter
	KindLink       Kind = "link"       // single links, one entry per id
)

// Key addresses one cache entry. Filter is empty for unfiltered lists.
type Key struct {
	Kind   Kind
	Filter string
}

func (k Key) String() string {
	if k.Filter == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + ":" + k.Filter
}

// Mutation names a write operation.
type Mutation string

const (
	MutationCreateCategory Mutation = "create_category"
	MutationUpdateCategory Mutation = "update_category"
	MutationDeleteCategory Mutation = "delete_category"
	MutationCreateLink     Mutation = "create_link"
	MutationUpdateLink     Mutation = "update_link"
	MutationDeleteLink     Mutation = "delete_link"
)

// invalidates lists the kinds a successful mutation makes stale. Deleting a
// category rewrites the category_id of its links.
var invalidates = map[Mutation][]Kind{
	MutationCreateCategory: {KindCategories},
	MutationUpdateCategory: {KindCategories},
	MutationDeleteCategory: {KindCategories, KindLinks, KindLink},
	MutationCreateLink:     {KindLinks},
	MutationUpdateLink:     {KindLinks, KindLink},
	MutationDeleteLink:     {KindLinks, KindLink},
}

// Invalidates returns the kinds made stale by m.
func Invalidates(m Mutation) []Kind {
	return append([]Kind(nil), invalidates[m]...)
}

type entry struct {
	data      any
	fetchedAt time.Time
	stale     bool
}

// QueryCache is a process-local cache of server state. Concurrent queries
// for the same key share one fetch.
type QueryCache struct {
	mu         sync.Mutex
	entries    map[Key]*entry
	versions   map[Kind]uint64 // bumped by every invalidation of the kind
	generation uint64          // bumped by Clear
	staleTime  time.Duration
	now        func() time.Time

	group singleflight.Group
}

// NewQueryCache creates a cache whose entries go stale after staleTime.
// A zero staleTime keeps entries fresh until invalidated.
func NewQueryCache(staleTime time.Duration) *QueryCache {
	return &QueryCache{
		entries:   map[Key]*entry{},
		versions:  map[Kind]uint64{},
		staleTime: staleTime,
		now:       time.Now,
	}
}

// Query returns fresh cached data for key or fetches it. A fetch that
// overlaps an invalidation of its kind is kept but marked stale; one that
// overlaps Clear is returned to its callers and not cached. The shared fetch
// outlives the cancellation of any single caller; a cancelled caller stops
// waiting and gets its own context error.
func Query[T any](ctx context.Context, c *QueryCache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if data, ok := c.fresh(key); ok {
		if v, ok := data.(T); ok {
			return v, nil
		}
	}

	generation, version := c.snapshot(key.Kind)
	flight := fmt.Sprintf("%s#%d.%d", key, generation, version)
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flight, func() (any, error) {
		if data, ok := c.fresh(key); ok {
			return data, nil
		}
		data, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, data, generation, version)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Mutate runs a write. On success the kinds listed for m are invalidated;
// on failure the cache is left untouched and the error returned.
func Mutate[T any](ctx context.Context, c *QueryCache, m Mutation, run func(context.Context) (T, error)) (T, error) {
	out, err := run(ctx)
	if err != nil {
		return out, err
	}
	c.Invalidate(invalidates[m]...)
	return out, nil
}

// Invalidate marks every entry of the given kinds stale.
func (c *QueryCache) Invalidate(kinds ...Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, kind := range kinds {
		c.versions[kind]++
	}
	for key, e := range c.entries {
		for _, kind := range kinds {
			if key.Kind == kind {
				e.stale = true
			}
		}
	}
}

// Clear drops every entry. Results of fetches started earlier are not cached.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[Key]*entry{}
	c.generation++
}

// Peek returns cached data for key, fresh or stale.
func (c *QueryCache) Peek(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Len returns the number of cached entries.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *QueryCache) fresh(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	if c.staleTime > 0 && c.now().Sub(e.fetchedAt) >= c.staleTime {
		return nil, false
	}
	return e.data, true
}

func (c *QueryCache) snapshot(kind Kind) (generation, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation, c.versions[kind]
}

func (c *QueryCache) store(key Key, data any, generation, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}
	c.entries[key] = &entry{
		data:      data,
		fetchedAt: c.now(),
		stale:     version != c.versions[key.Kind],
	}
}
