package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		ColorbarCacheSizeMB: 8,
		ColorbarTTL:         time.Minute,
		QueryCacheSize:      4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestColorbarKey(t *testing.T) {
	h := ColorbarKey("rainbow", 256, 24, false, 0, 1)
	assert.Equal(t, "bar:rainbow:256x24:h:0:1", h)

	v := ColorbarKey("rainbow", 256, 24, true, 0, 1)
	assert.NotEqual(t, h, v)
	assert.NotEqual(t, h, ColorbarKey("rainbow", 256, 24, false, -1, 1))
}

func TestInterpolateKey(t *testing.T) {
	base := "interp:rainbow:0:1:hex"

	t.Run("noValues", func(t *testing.T) {
		assert.Equal(t, base, InterpolateKey("rainbow", 0, 1, "hex", nil))
	})

	t.Run("stable", func(t *testing.T) {
		k1 := InterpolateKey("rainbow", 0, 1, "hex", []float64{0.1, 0.2})
		k2 := InterpolateKey("rainbow", 0, 1, "hex", []float64{0.1, 0.2})
		assert.Equal(t, k1, k2)
		assert.Contains(t, k1, base+":2:")
	})

	t.Run("orderMatters", func(t *testing.T) {
		k1 := InterpolateKey("rainbow", 0, 1, "hex", []float64{0.1, 0.2})
		k2 := InterpolateKey("rainbow", 0, 1, "hex", []float64{0.2, 0.1})
		assert.NotEqual(t, k1, k2)
	})

	t.Run("formatMatters", func(t *testing.T) {
		k1 := InterpolateKey("rainbow", 0, 1, "hex", []float64{0.5})
		k2 := InterpolateKey("rainbow", 0, 1, "byte", []float64{0.5})
		assert.NotEqual(t, k1, k2)
	})
}

func TestManager_Colorbar(t *testing.T) {
	m := newTestManager(t)

	_, ok := m.GetColorbar("missing")
	assert.False(t, ok)

	require.NoError(t, m.SetColorbar("k", []byte("png")))
	got, ok := m.GetColorbar("k")
	require.True(t, ok)
	assert.Equal(t, []byte("png"), got)
}

func TestManager_QueryEvicts(t *testing.T) {
	m := newTestManager(t)

	for _, k := range []string{"a", "b", "c", "d", "e"} {
		m.SetQuery(k, []byte(k))
	}
	_, ok := m.GetQuery("a")
	assert.False(t, ok, "oldest entry should be evicted")

	got, ok := m.GetQuery("e")
	require.True(t, ok)
	assert.Equal(t, []byte("e"), got)

	stats := m.Stats()
	assert.Equal(t, 4, stats["query_cache_len"])
	assert.Equal(t, 0, stats["colorbar_cache_len"])
}
