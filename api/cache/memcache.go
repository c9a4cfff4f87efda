package cache

import (
	"sync"
	"time"
)

// MemCache keeps hot read models in process so most reads skip Redis.
// Every entry of a cache shares the same ttl.
type MemCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time

	sweeper *time.Ticker
	done    chan struct{}
	wg      sync.WaitGroup
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// NewMemCache creates a cache whose entries live for ttl.
// Expired entries are dropped on read and by a sweep every sweepInterval.
func NewMemCache[V any](ttl time.Duration, sweepInterval time.Duration) *MemCache[V] {
	mc := &MemCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
		sweeper: time.NewTicker(sweepInterval),
		done:    make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweepLoop()

	return mc
}

func (mc *MemCache[V]) sweepLoop() {
	defer mc.wg.Done()
	for {
		select {
		case <-mc.sweeper.C:
			mc.sweep()
		case <-mc.done:
			return
		}
	}
}

func (mc *MemCache[V]) sweep() {
	now := mc.now()

	mc.mu.Lock()
	defer mc.mu.Unlock()
	for key, e := range mc.entries {
		if !now.Before(e.expiresAt) {
			delete(mc.entries, key)
		}
	}
}

// Get returns the live value of key.
func (mc *MemCache[V]) Get(key string) (V, bool) {
	mc.mu.RLock()
	e, ok := mc.entries[key]
	mc.mu.RUnlock()

	if !ok || !mc.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key for the cache ttl.
func (mc *MemCache[V]) Put(key string, value V) {
	mc.mu.Lock()
	mc.entries[key] = entry[V]{value: value, expiresAt: mc.now().Add(mc.ttl)}
	mc.mu.Unlock()
}

// Invalidate drops key, used after a day is rescored.
func (mc *MemCache[V]) Invalidate(key string) {
	mc.mu.Lock()
	delete(mc.entries, key)
	mc.mu.Unlock()
}

// Len counts the stored entries, expired ones not yet swept included.
func (mc *MemCache[V]) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.entries)
}

// Close stops the sweeper.
func (mc *MemCache[V]) Close() {
	close(mc.done)
	mc.sweeper.Stop()
	mc.wg.Wait()
}
