package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/model"
)

func userID(s string) *string { return &s }

func TestDashboard_PutGet(t *testing.T) {
	d := NewDashboard(config.CacheConfig{})
	plants := []model.PlantDashboardRecord{{PlantID: "p1", UserID: "u1"}}

	d.Put(userID("u1"), d.Generation(), plants)

	got, ok := d.Get(userID("u1"))
	require.True(t, ok)
	assert.Equal(t, plants, got)

	_, ok = d.Get(nil)
	assert.False(t, ok, "the all-users key is distinct from every user key")

	got[0].PlantID = "mutated"
	again, _ := d.Get(userID("u1"))
	assert.Equal(t, "p1", again[0].PlantID)
}

func TestDashboard_EmptyResultNotCached(t *testing.T) {
	d := NewDashboard(config.CacheConfig{})

	d.Put(userID("u1"), d.Generation(), nil)
	d.Put(userID("u2"), d.Generation(), []model.PlantDashboardRecord{})

	assert.Equal(t, 0, d.Len())
}

func TestDashboard_MaxEntries(t *testing.T) {
	d := NewDashboard(config.CacheConfig{MaxEntries: 2})
	one := []model.PlantDashboardRecord{{PlantID: "p"}}

	d.Put(userID("a"), d.Generation(), one)
	d.Put(userID("b"), d.Generation(), one)
	d.Put(userID("c"), d.Generation(), one)

	_, ok := d.Get(userID("c"))
	assert.False(t, ok)
	assert.Equal(t, 2, d.Len())

	// Overwriting an existing key is always allowed.
	d.Put(userID("a"), d.Generation(), []model.PlantDashboardRecord{{PlantID: "p2"}})
	got, ok := d.Get(userID("a"))
	require.True(t, ok)
	assert.Equal(t, "p2", got[0].PlantID)
}

func TestDashboard_TTLAndFlush(t *testing.T) {
	d := NewDashboard(config.CacheConfig{TTL: 20 * time.Millisecond, CleanupInterval: time.Hour})
	d.Put(nil, d.Generation(), []model.PlantDashboardRecord{{PlantID: "p1"}})

	_, ok := d.Get(nil)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = d.Get(nil)
	assert.False(t, ok)

	d.Put(userID("u1"), d.Generation(), []model.PlantDashboardRecord{{PlantID: "p1"}})
	d.Flush()
	assert.Equal(t, 0, d.Len())
}

func TestDashboard_PutAfterFlushIsDropped(t *testing.T) {
	d := NewDashboard(config.CacheConfig{})

	gen := d.Generation()
	d.Flush()
	d.Put(userID("u1"), gen, []model.PlantDashboardRecord{{PlantID: "stale"}})

	_, ok := d.Get(userID("u1"))
	assert.False(t, ok)
	assert.Equal(t, gen+1, d.Generation())

	d.Put(userID("u1"), d.Generation(), []model.PlantDashboardRecord{{PlantID: "fresh"}})
	got, ok := d.Get(userID("u1"))
	require.True(t, ok)
	assert.Equal(t, "fresh", got[0].PlantID)
}
