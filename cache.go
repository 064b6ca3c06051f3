package formatstyle

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheLimit is the number of formatter handles kept before the cache flushes
const DefaultCacheLimit = 100

// CacheStats is a snapshot of cache activity
type CacheStats struct {
	Size    int
	Hits    int64
	Misses  int64
	Flushes int64
}

type cacheConfig struct {
	limit        int
	singleFlight bool
	logger       Logger
	evict        func(any, any)
}

// CacheOption configures a FormatterCache
type CacheOption func(*cacheConfig)

// WithCacheCapacity sets the hard entry limit. Non-positive values keep the default.
func WithCacheCapacity(limit int) CacheOption {
	return func(c *cacheConfig) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithSingleFlight makes creation single-construction per key: concurrent misses
// for the same key share one builder call instead of racing.
func WithSingleFlight() CacheOption {
	return func(c *cacheConfig) {
		c.singleFlight = true
	}
}

// WithCacheLogger reports flushes to logger
func WithCacheLogger(logger Logger) CacheOption {
	return func(c *cacheConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCacheEvict registers evict to receive every entry dropped by a flush.
// It runs after the lock is released, so an entry may still be in use by a
// caller that fetched it before the flush.
func WithCacheEvict[K comparable, V any](evict func(K, V)) CacheOption {
	return func(c *cacheConfig) {
		if evict == nil {
			return
		}
		c.evict = func(key, value any) {
			evict(key.(K), value.(V))
		}
	}
}

// FormatterCache memoizes expensive values by key under a hard size limit.
//
// Inserting a new key into a full cache clears the whole map first: there is
// no per-entry recency tracking. Builders run outside the lock, so two callers
// missing the same key may both build; the later insert wins. WithSingleFlight
// removes that duplication.
type FormatterCache[K comparable, V any] struct {
	mu     sync.Mutex
	items  map[K]V
	limit  int
	group  *singleflight.Group
	logger Logger
	evict  func(any, any)

	hits    *atomic.Int64
	misses  *atomic.Int64
	flushes *atomic.Int64
}

// NewFormatterCache creates an empty cache
func NewFormatterCache[K comparable, V any](opts ...CacheOption) *FormatterCache[K, V] {
	cfg := cacheConfig{limit: DefaultCacheLimit, logger: DiscardLogger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	cache := &FormatterCache[K, V]{
		items:   make(map[K]V),
		limit:   cfg.limit,
		logger:  cfg.logger,
		evict:   cfg.evict,
		hits:    atomic.NewInt64(0),
		misses:  atomic.NewInt64(0),
		flushes: atomic.NewInt64(0),
	}
	if cfg.singleFlight {
		cache.group = &singleflight.Group{}
	}
	return cache
}

// GetOrCreate returns the value stored for key, invoking build on a miss.
// Build errors are returned and never cached.
func (c *FormatterCache[K, V]) GetOrCreate(key K, build func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		c.hits.Inc()
		return value, nil
	}
	c.misses.Inc()

	if c.group == nil {
		value, err := build()
		if err != nil {
			return value, err
		}
		c.Set(key, value)
		return value, nil
	}

	shared, err, _ := c.group.Do(fmt.Sprint(key), func() (any, error) {
		if value, ok := c.Get(key); ok {
			return value, nil
		}
		value, err := build()
		if err != nil {
			return nil, err
		}
		c.Set(key, value)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return shared.(V), nil
}

// Get returns the stored value for key
func (c *FormatterCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	return value, ok
}

// Set stores value under key, flushing the cache first when a new key would exceed the limit.
func (c *FormatterCache[K, V]) Set(key K, value V) {
	var dropped map[K]V

	c.mu.Lock()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.limit {
		dropped = c.items
		c.items = make(map[K]V, c.limit)
		c.flushes.Inc()
		c.logger.Debugf("formatter cache limit %d reached, flushed %d entries", c.limit, len(dropped))
	}
	c.items[key] = value
	c.mu.Unlock()

	if c.evict == nil {
		return
	}
	for k, v := range dropped {
		c.evict(k, v)
	}
}

// Len returns the number of stored entries
func (c *FormatterCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Purge empties the cache, handing every dropped entry to release when it is not nil.
func (c *FormatterCache[K, V]) Purge(release func(K, V)) {
	c.mu.Lock()
	items := c.items
	c.items = make(map[K]V, c.limit)
	c.mu.Unlock()

	if release == nil {
		return
	}
	for key, value := range items {
		release(key, value)
	}
}

// Stats returns a snapshot of the cache counters
func (c *FormatterCache[K, V]) Stats() CacheStats {
	return CacheStats{
		Size:    c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Flushes: c.flushes.Load(),
	}
}
