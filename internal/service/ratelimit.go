package service

import (
	"sync"
	"time"
)

// TokenBucket is an in-memory per-key rate limiter using the token bucket
// algorithm. The login endpoint keys it by client IP. Safe for concurrent use.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64
	now      Clock
	done     chan struct{}
	once     sync.Once
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter allowing bursts of capacity per key,
// refilling at rate tokens per second. A background goroutine drops buckets
// idle for more than ten minutes until Close is called.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	tb := newTokenBucket(rate, capacity, time.Now)
	go tb.cleanup(5 * time.Minute)
	return tb
}

func newTokenBucket(rate, capacity float64, now Clock) *TokenBucket {
	return &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		now:      now,
		done:     make(chan struct{}),
	}
}

// Allow consumes one token for key and reports whether one was available.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Close stops the cleanup goroutine.
func (tb *TokenBucket) Close() {
	tb.once.Do(func() { close(tb.done) })
}

func (tb *TokenBucket) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-tb.done:
			return
		case <-ticker.C:
			tb.evictIdle(10 * time.Minute)
		}
	}
}

func (tb *TokenBucket) evictIdle(idle time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	cutoff := tb.now().Add(-idle)
	for key, b := range tb.buckets {
		if b.last.Before(cutoff) {
			delete(tb.buckets, key)
		}
	}
}
