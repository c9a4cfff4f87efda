package requests

import (
	"context"
	"sync"
	"time"
)

// RateLimiter keeps a fixed minimum interval between provider requests.
// The provider publishes no reliable quota headers, so there are no windows to track.
type RateLimiter struct {
	// Minimum delay between two requests.
	fetchInterval time.Duration

	// Last reserved slot and the mutex.
	lastFetch time.Time
	mu        sync.Mutex

	now func() time.Time
}

// Create a instance of the rate limiter.
func CreateRateLimiter(fetchInterval time.Duration) *RateLimiter {
	return &RateLimiter{
		fetchInterval: fetchInterval,
		now:           time.Now,
	}
}

// reserve books the next free slot and returns how long the caller must wait for it.
func (r *RateLimiter) reserve() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	slot := r.lastFetch.Add(r.fetchInterval)
	if slot.Before(now) {
		slot = now
	}
	r.lastFetch = slot

	return slot.Sub(now)
}

// Wait blocks until the caller is allowed to hit the provider.
func (r *RateLimiter) Wait(ctx context.Context) error {
	wait := r.reserve()
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
