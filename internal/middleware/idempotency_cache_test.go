package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_GetSet(t *testing.T) {
	clock := newTestClock()

	tests := []struct {
		name      string
		setup     func(*IdempotencyStore)
		key       string
		wantFound bool
	}{
		{
			name: "returns stored response",
			setup: func(s *IdempotencyStore) {
				s.Set("k1", &cachedResponse{StatusCode: 201, Body: []byte(`{}`)})
			},
			key:       "k1",
			wantFound: true,
		},
		{
			name:      "returns false when key not found",
			setup:     func(s *IdempotencyStore) {},
			key:       "missing",
			wantFound: false,
		},
		{
			name: "returns false when expired",
			setup: func(s *IdempotencyStore) {
				s.Set("old", &cachedResponse{StatusCode: 200})
				clock.Advance(2 * time.Hour)
			},
			key:       "old",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newIdempotencyStore(time.Hour, 10, clock.Now)
			tt.setup(store)

			resp, found := store.Get(tt.key)

			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				require.NotNil(t, resp)
				assert.Equal(t, clock.Now(), resp.StoredAt)
			}
		})
	}
}

func TestIdempotencyStore_EvictsOldestWhenFull(t *testing.T) {
	clock := newTestClock()
	store := newIdempotencyStore(time.Hour, 3, clock.Now)

	for i := 0; i < 3; i++ {
		store.Set(fmt.Sprintf("k%d", i), &cachedResponse{StatusCode: 200})
		clock.Advance(time.Second)
	}
	store.Set("k3", &cachedResponse{StatusCode: 200})

	assert.Equal(t, 3, store.Len())
	_, found := store.Get("k0")
	assert.False(t, found, "oldest entry is evicted")
	_, found = store.Get("k3")
	assert.True(t, found)

	t.Run("overwriting a key does not evict", func(t *testing.T) {
		store.Set("k3", &cachedResponse{StatusCode: 201})
		assert.Equal(t, 3, store.Len())
	})
}

func TestIdempotencyStore_RemoveExpired(t *testing.T) {
	clock := newTestClock()
	store := newIdempotencyStore(time.Minute, 0, clock.Now)

	store.Set("old", &cachedResponse{StatusCode: 200})
	clock.Advance(50 * time.Second)
	store.Set("new", &cachedResponse{StatusCode: 200})
	clock.Advance(20 * time.Second)

	assert.Equal(t, 1, store.removeExpired())
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, DefaultIdempotencyMaxEntries, store.maxEntries)
}

func TestIdempotencyStore_StopTwice(t *testing.T) {
	store := NewIdempotencyStore(time.Minute, 10)

	assert.NotPanics(t, func() {
		store.Stop()
		store.Stop()
	})
}
