package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCache(t *testing.T) {
	mc := NewMemCache[int](time.Minute, time.Hour)
	defer mc.Close()

	now := time.Date(2025, 9, 11, 12, 0, 0, 0, time.UTC)
	mc.now = func() time.Time { return now }

	mc.Put("leaderboard:ti2025:20250911", 42)
	value, ok := mc.Get("leaderboard:ti2025:20250911")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	_, ok = mc.Get("missing")
	assert.False(t, ok)

	t.Run("expires-at-ttl", func(t *testing.T) {
		now = now.Add(time.Minute)
		value, ok := mc.Get("leaderboard:ti2025:20250911")
		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("invalidate", func(t *testing.T) {
		mc.Put("key", 1)
		mc.Invalidate("key")
		_, ok := mc.Get("key")
		assert.False(t, ok)
	})

	t.Run("sweep", func(t *testing.T) {
		mc.Put("old", 1)
		now = now.Add(30 * time.Second)
		mc.Put("fresh", 2)
		now = now.Add(40 * time.Second)

		mc.sweep()

		assert.Equal(t, 1, mc.Len())
		_, ok := mc.Get("fresh")
		assert.True(t, ok)
	})
}

func TestMemCacheClose(t *testing.T) {
	mc := NewMemCache[string](time.Minute, time.Millisecond)
	mc.Put("key", "value")

	done := make(chan struct{})
	go func() {
		mc.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper didn't stop")
	}
}
