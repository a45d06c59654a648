package middleware

import (
	"sync"
	"time"
)

// cachedResponse is a stored 2xx response replayed for a repeated key.
type cachedResponse struct {
	BodyHash   uint64
	StatusCode int
	Headers    map[string]string
	Body       []byte
	StoredAt   time.Time
}

// IdempotencyStore keeps responses per idempotency key for a fixed TTL.
// When full, the oldest entry is evicted.
type IdempotencyStore struct {
	mu         sync.Mutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewIdempotencyStore creates a store and starts its cleanup loop.
func NewIdempotencyStore(ttl time.Duration, maxEntries int) *IdempotencyStore {
	s := newIdempotencyStore(ttl, maxEntries, time.Now)
	go s.cleanupLoop(time.Minute)
	return s
}

func newIdempotencyStore(ttl time.Duration, maxEntries int, now func() time.Time) *IdempotencyStore {
	if maxEntries <= 0 {
		maxEntries = DefaultIdempotencyMaxEntries
	}
	return &IdempotencyStore{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
		stopCh:     make(chan struct{}),
	}
}

// Get returns the live response stored under key.
func (s *IdempotencyStore) Get(key string) (*cachedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(resp.StoredAt) > s.ttl {
		delete(s.items, key)
		return nil, false
	}
	return resp, true
}

// Set stores resp under key, stamping it with the current time.
func (s *IdempotencyStore) Set(key string, resp *cachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists && len(s.items) >= s.maxEntries {
		s.evictOldest()
	}
	resp.StoredAt = s.now()
	s.items[key] = resp
}

// Len returns the number of stored responses, expired ones included.
func (s *IdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *IdempotencyStore) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, v := range s.items {
		if oldestKey == "" || v.StoredAt.Before(oldest) {
			oldestKey, oldest = k, v.StoredAt
		}
	}
	delete(s.items, oldestKey)
}

func (s *IdempotencyStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *IdempotencyStore) removeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, resp := range s.items {
		if now.Sub(resp.StoredAt) > s.ttl {
			delete(s.items, key)
			removed++
		}
	}
	return removed
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
