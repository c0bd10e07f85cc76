package history

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/metrics"
)

// cachedStatsEntry wraps player stats with version metadata for cache invalidation
type cachedStatsEntry struct {
	Version  string
	Stats    domain.PlayerStats
	CachedAt time.Time
}

// statsCache is an in-memory LRU of per-player statistics with time-based expiration
type statsCache struct {
	lru *expirable.LRU[int, *cachedStatsEntry]
}

// newStatsCache creates a stats cache holding at most size players for ttl
func newStatsCache(size int, ttl time.Duration) *statsCache {
	if size < 1 {
		size = DefaultStatsCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultStatsCacheTTL
	}
	return &statsCache{
		lru: expirable.NewLRU[int, *cachedStatsEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached stats for a player
func (c *statsCache) Get(playerID int) (domain.PlayerStats, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		metrics.StatsCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()
		return domain.PlayerStats{}, false
	}

	if entry.Version != StatsCacheSchemaVersion {
		c.lru.Remove(playerID)
		metrics.StatsCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()
		return domain.PlayerStats{}, false
	}

	metrics.StatsCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
	return copyStats(entry.Stats), true
}

// Set stores stats for a player
func (c *statsCache) Set(stats domain.PlayerStats) {
	c.lru.Add(stats.PlayerID, &cachedStatsEntry{
		Version:  StatsCacheSchemaVersion,
		Stats:    copyStats(stats),
		CachedAt: time.Now(),
	})
}

// Invalidate drops a player's cached stats
func (c *statsCache) Invalidate(playerID int) {
	c.lru.Remove(playerID)
}

// Clear removes all entries from the cache
func (c *statsCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached players
func (c *statsCache) Len() int {
	return c.lru.Len()
}

// copyStats detaches the counts map so callers cannot mutate cached data
func copyStats(s domain.PlayerStats) domain.PlayerStats {
	counts := make(map[domain.Perspective]int, len(s.Counts))
	for k, v := range s.Counts {
		counts[k] = v
	}
	s.Counts = counts
	return s
}
