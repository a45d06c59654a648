// Package service contains the business logic for the truckload service.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/metrics"
	"github.com/guttosm/truckload-service/internal/service/cache"
)

const defaultShards = 16

// ShardedCache spreads plans over several LRU shards to reduce lock
// contention. Keys are request fingerprints, so the low bits select a shard.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint64
}

// NewShardedCache creates a cache holding about capacity plans for ttl each.
// numShards is rounded up to a power of two; zero or less means 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := max(capacity/n, 1)
	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl, time.Now)
	}
	return &ShardedCache{shards: shards, shardMask: uint64(n - 1)}
}

func (sc *ShardedCache) shard(key uint64) *ttlCache {
	return sc.shards[key&sc.shardMask]
}

// Get retrieves a plan from the owning shard.
func (sc *ShardedCache) Get(key uint64) (model.LoadPlan, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a plan in the owning shard.
func (sc *ShardedCache) Set(key uint64, value model.LoadPlan) {
	sc.shard(key).Set(key, value)
	m := sc.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(key uint64) {
	sc.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheMetrics(0, sc.Metrics().Capacity)
}

// Stop shuts down the cleanup goroutine of every shard. Safe to call twice.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics returns the sum of all shard metrics.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a mutex guarded LRU list with per-entry expiry.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	clock    func() time.Time
	items    map[uint64]*cacheEntry
	head     *cacheEntry
	tail     *cacheEntry

	stopCh   chan struct{}
	stopOnce sync.Once

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry struct {
	key       uint64
	value     model.LoadPlan
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a shard and starts its cleanup goroutine.
func newTTLCache(capacity int, ttl time.Duration, clock func() time.Time) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		clock:    clock,
		items:    make(map[uint64]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop(time.Minute)
	return c
}

func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) Get(key uint64) (model.LoadPlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.LoadPlan{}, false
	}
	if c.clock().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.LoadPlan{}, false
	}

	c.moveToFront(entry)
	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

func (c *ttlCache) Set(key uint64, value model.LoadPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *ttlCache) Invalidate(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[uint64]*cacheEntry, c.capacity)
	c.head, c.tail = nil, nil
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

func (c *ttlCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

// removeExpired drops every expired entry and returns how many were dropped.
func (c *ttlCache) removeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	removed := 0
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			removed++
		}
	}
	return removed
}

func (c *ttlCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}
