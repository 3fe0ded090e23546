// Package cache provides caching for rendered colorbars and interpolation results.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/allegro/bigcache/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains cache configuration.
type Config struct {
	ColorbarCacheSizeMB int
	ColorbarTTL         time.Duration
	QueryCacheSize      int
}

// Manager manages colorbar and query caches.
type Manager struct {
	colorbarCache *bigcache.BigCache
	queryCache    *lru.Cache[string, []byte]
}

// NewManager creates a new cache manager.
func NewManager(cfg Config) (*Manager, error) {
	colorbarCacheConfig := bigcache.Config{
		Shards:             64,
		LifeWindow:         cfg.ColorbarTTL,
		CleanWindow:        cfg.ColorbarTTL / 2,
		MaxEntriesInWindow: 10000,
		MaxEntrySize:       16 * 1024, // colorbars are small strips
		HardMaxCacheSize:   cfg.ColorbarCacheSizeMB,
		Verbose:            false,
	}

	colorbarCache, err := bigcache.New(context.Background(), colorbarCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create colorbar cache: %w", err)
	}

	queryCache, err := lru.New[string, []byte](cfg.QueryCacheSize)
	if err != nil {
		colorbarCache.Close()
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	return &Manager{
		colorbarCache: colorbarCache,
		queryCache:    queryCache,
	}, nil
}

// GetColorbar retrieves a rendered colorbar from cache.
func (m *Manager) GetColorbar(key string) ([]byte, bool) {
	data, err := m.colorbarCache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetColorbar stores a rendered colorbar in cache.
func (m *Manager) SetColorbar(key string, data []byte) error {
	return m.colorbarCache.Set(key, data)
}

// GetQuery retrieves an encoded interpolation result from cache.
func (m *Manager) GetQuery(key string) ([]byte, bool) {
	return m.queryCache.Get(key)
}

// SetQuery stores an encoded interpolation result in cache.
func (m *Manager) SetQuery(key string, data []byte) {
	m.queryCache.Add(key, data)
}

// ColorbarKey generates a cache key for a colorbar image.
func ColorbarKey(series string, width, height int, vertical bool, min, max float64) string {
	orientation := "h"
	if vertical {
		orientation = "v"
	}
	return fmt.Sprintf("bar:%s:%dx%d:%s:%g:%g", series, width, height, orientation, min, max)
}

// InterpolateKey generates a cache key for an interpolation over a named series.
// Values are hashed so long batches produce bounded keys.
func InterpolateKey(series string, min, max float64, format string, values []float64) string {
	base := fmt.Sprintf("interp:%s:%g:%g:%s", series, min, max, format)
	if len(values) == 0 {
		return base
	}

	h := sha256.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%s:%d:%s", base, len(values), hex.EncodeToString(h.Sum(nil))[:16])
}

// Stats returns cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	stats := m.colorbarCache.Stats()
	return map[string]interface{}{
		"colorbar_cache_len":    m.colorbarCache.Len(),
		"colorbar_cache_cap":    m.colorbarCache.Capacity(),
		"colorbar_cache_hits":   stats.Hits,
		"colorbar_cache_misses": stats.Misses,
		"query_cache_len":       m.queryCache.Len(),
	}
}

// Close closes the cache manager.
func (m *Manager) Close() error {
	m.queryCache.Purge()
	return m.colorbarCache.Close()
}
