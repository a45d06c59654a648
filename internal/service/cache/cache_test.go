//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type mapCache struct {
	items map[uint64]model.LoadPlan
	hits  int64
}

func (m *mapCache) Get(key uint64) (model.LoadPlan, bool) {
	v, ok := m.items[key]
	if ok {
		m.hits++
	}
	return v, ok
}
func (m *mapCache) Set(key uint64, value model.LoadPlan) { m.items[key] = value }
func (m *mapCache) Invalidate(key uint64)                { delete(m.items, key) }
func (m *mapCache) Clear()                               { m.items = map[uint64]model.LoadPlan{} }
func (m *mapCache) Stop()                                {}
func (m *mapCache) Metrics() Metrics {
	return Metrics{Hits: m.hits, Size: len(m.items), Capacity: -1}
}

func TestCacheWithMetricsContract(t *testing.T) {
	var c CacheWithMetrics = &mapCache{items: map[uint64]model.LoadPlan{}}

	_, found := c.Get(42)
	assert.False(t, found)

	c.Set(42, model.LoadPlan{Strategy: "area_desc"})
	plan, found := c.Get(42)
	assert.True(t, found)
	assert.Equal(t, "area_desc", plan.Strategy)
	assert.Equal(t, Metrics{Hits: 1, Size: 1, Capacity: -1}, c.Metrics())

	c.Invalidate(42)
	_, found = c.Get(42)
	assert.False(t, found)

	c.Set(1, model.LoadPlan{})
	c.Clear()
	assert.Zero(t, c.Metrics().Size)
	c.Stop()
}
