// Package ratelimit throttles admin login attempts with per-key token
// buckets, keyed by client IP.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

type Limiter struct {
	maxTokens  int
	refillTime time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewLimiter allows maxTokens attempts per key, refilling one attempt every
// refillTime.
func NewLimiter(maxTokens int, refillTime time.Duration) *Limiter {
	return &Limiter{
		maxTokens:  maxTokens,
		refillTime: refillTime,
		buckets:    make(map[string]*bucket),
	}
}

// Allow consumes one attempt for key. When exhausted it reports how long
// until the next attempt becomes available.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.maxTokens, lastRefill: now}
		l.buckets[key] = b
	}

	refilled := int(now.Sub(b.lastRefill) / l.refillTime)
	if refilled > 0 {
		b.tokens += refilled
		if b.tokens > l.maxTokens {
			b.tokens = l.maxTokens
		}
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true, 0
	}
	return false, b.lastRefill.Add(l.refillTime).Sub(now)
}
