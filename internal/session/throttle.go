package session

import (
	"sync"
	"time"
)

// Throttle is a per-user token bucket guarding complaint submission against
// rapid duplicate resubmits. It is safe for concurrent use. Stale buckets
// are cleaned up in the background.
type Throttle struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum tokens
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewThrottle creates a throttle allowing up to capacity submissions per
// key, refilling at the given rate (tokens per second).
func NewThrottle(rate, capacity float64) *Throttle {
	t := &Throttle{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
	}
	go t.cleanup()
	return t
}

// Allow reports whether the given key may submit. Each call consumes one
// token; it returns false when the bucket is empty.
func (t *Throttle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: t.capacity, last: time.Now()}
		t.buckets[key] = b
	}

	now := time.Now()
	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*t.rate, t.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// cleanup runs periodically and removes buckets idle for 10 minutes.
func (t *Throttle) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		t.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, b := range t.buckets {
			if b.last.Before(cutoff) {
				delete(t.buckets, key)
			}
		}
		t.mu.Unlock()
	}
}
