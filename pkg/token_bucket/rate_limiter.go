package token_bucket

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// TokenBucket глобальный (не per-client) лимитер. Токены дробные, поэтому медленная
// скорость пополнения копится между вызовами, а не теряется при округлении.
type TokenBucket struct {
	mu         sync.Mutex
	clock      Clock
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(realClock{}, capacity, refillRate)
}

func NewTokenBucketWithClock(clock Clock, capacity int, refillRate float64) *TokenBucket {
	if capacity < 0 {
		capacity = 0
	}
	if refillRate < 0 {
		refillRate = 0
	}
	return &TokenBucket{
		clock:      clock,
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: clock.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(t.clock.Now())

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}
