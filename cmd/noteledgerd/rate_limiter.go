// rate_limiter.go - Per-sender submission rate limiting.
package main

import (
	"sync"
	"time"
)

// RateLimiter implements a simple token bucket rate limiter.
type RateLimiter struct {
	mu           sync.Mutex
	tokens       int
	maxTokens    int
	refillRate   int
	lastRefill   time.Time
	refillPeriod time.Duration
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(maxTokens int, refillRate int, refillPeriod time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:       maxTokens,
		maxTokens:    maxTokens,
		refillRate:   refillRate,
		lastRefill:   time.Now(),
		refillPeriod: refillPeriod,
	}
}

// Allow checks if a submission is allowed and consumes a token if so.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	refillCount := int(now.Sub(rl.lastRefill) / rl.refillPeriod)
	if refillCount > 0 {
		rl.tokens += refillCount * rl.refillRate
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
		}
		rl.lastRefill = now
	}

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}
	return false
}

// SenderRateLimiter manages one token bucket per sender identity, throttling
// how fast any single identity may submit transactions.
type SenderRateLimiter struct {
	mu           sync.Mutex
	limiters     map[string]*RateLimiter
	maxTokens    int
	refillRate   int
	refillPeriod time.Duration
}

// NewSenderRateLimiter creates a per-sender rate limiter.
func NewSenderRateLimiter(maxTokens int, refillRate int, refillPeriod time.Duration) *SenderRateLimiter {
	return &SenderRateLimiter{
		limiters:     make(map[string]*RateLimiter),
		maxTokens:    maxTokens,
		refillRate:   refillRate,
		refillPeriod: refillPeriod,
	}
}

// Allow checks if a submission from the sender is allowed.
func (srl *SenderRateLimiter) Allow(sender string) bool {
	srl.mu.Lock()
	limiter, exists := srl.limiters[sender]
	if !exists {
		limiter = NewRateLimiter(srl.maxTokens, srl.refillRate, srl.refillPeriod)
		srl.limiters[sender] = limiter
	}
	srl.mu.Unlock()

	return limiter.Allow()
}
