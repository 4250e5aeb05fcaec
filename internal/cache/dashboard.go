package cache

import (
	"log"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/model"
)

const allUsersKey = "\x00all"

// Dashboard caches dashboard query results per user id.
//
// Every Flush starts a new generation. A result fetched during an older
// generation is never stored, so a read that races a batch run cannot
// put pre-batch figures back.
type Dashboard struct {
	mu         sync.Mutex
	generation uint64
	store      *gocache.Cache
	ttl        time.Duration
	maxEntries int
}

// NewDashboard creates a cache from cfg. A zero TTL keeps entries until
// they are flushed.
func NewDashboard(cfg config.CacheConfig) *Dashboard {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}
	return &Dashboard{
		store:      gocache.New(ttl, cleanup),
		ttl:        ttl,
		maxEntries: cfg.MaxEntries,
	}
}

func key(userID *string) string {
	if userID == nil {
		return allUsersKey
	}
	return "user:" + *userID
}

// Get returns a copy of the cached plants for userID.
func (d *Dashboard) Get(userID *string) ([]model.PlantDashboardRecord, bool) {
	v, found := d.store.Get(key(userID))
	if !found {
		return nil, false
	}
	cached := v.([]model.PlantDashboardRecord)
	return append([]model.PlantDashboardRecord(nil), cached...), true
}

// Generation returns the current flush generation. Read it before fetching
// the value later passed to Put.
func (d *Dashboard) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}

// Put stores plants for userID if no Flush happened since generation was read.
// Empty results are never cached, and nothing is added once the cache holds
// maxEntries live items.
func (d *Dashboard) Put(userID *string, generation uint64, plants []model.PlantDashboardRecord) {
	if len(plants) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		return
	}

	k := key(userID)
	if d.maxEntries > 0 {
		if _, exists := d.store.Get(k); !exists && d.store.ItemCount() >= d.maxEntries {
			d.store.DeleteExpired()
			if d.store.ItemCount() >= d.maxEntries {
				log.Printf("dashboard cache is full (%d entries); not caching %s", d.maxEntries, k)
				return
			}
		}
	}

	d.store.Set(k, append([]model.PlantDashboardRecord(nil), plants...), d.ttl)
}

// Flush drops every cached result.
func (d *Dashboard) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.store.Flush()
}

// Len reports the number of cached keys, including expired ones not yet purged.
func (d *Dashboard) Len() int {
	return d.store.ItemCount()
}
